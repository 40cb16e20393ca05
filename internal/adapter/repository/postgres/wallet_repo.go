package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
	"duitbot/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// WalletRepository implements usecase.WalletRepository.
type WalletRepository struct {
	pool *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool}
}

// Create inserts a new wallet. The partial unique index on active wallet
// names backstops the usecase-level duplicate check under races.
func (r *WalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	query := `
		INSERT INTO wallets (id, user_id, name, balance, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		wallet.ID,
		wallet.UserID,
		wallet.Name,
		decimalToNumeric(wallet.Balance),
		wallet.Active,
		wallet.CreatedAt,
		wallet.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrDuplicateWalletName
	}

	return err
}

// ListActiveByUser retrieves the user's active wallets.
func (r *WalletRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Wallet, error) {
	query := `
		SELECT id, user_id, name, balance, active, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND active = TRUE
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []*domain.Wallet
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, wallet)
	}

	return wallets, rows.Err()
}

// GetByIDForUpdate retrieves a wallet by ID with a FOR UPDATE lock.
func (r *WalletRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT id, user_id, name, balance, active, created_at, updated_at
		FROM wallets
		WHERE id = $1
		FOR UPDATE
	`

	wallet, err := scanWallet(pgxTx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.WalletNotFoundError{Name: id}
	}
	if err != nil {
		return nil, err
	}

	return wallet, nil
}

// GetByIDsForUpdate retrieves multiple wallets with FOR UPDATE locks.
// ids must already be sorted by the caller to keep lock order stable.
func (r *WalletRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Wallet, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT id, user_id, name, balance, active, created_at, updated_at
		FROM wallets
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := pgxTx.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []*domain.Wallet
	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, wallet)
	}

	return wallets, rows.Err()
}

// UpdateBalance updates the balance of a wallet.
func (r *WalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE wallets SET balance = $2, updated_at = $3 WHERE id = $1`
	_, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(balance), updatedAt)
	return err
}

// Deactivate soft-deletes a wallet, freeing its name for reuse.
func (r *WalletRepository) Deactivate(ctx context.Context, id string, updatedAt time.Time) error {
	query := `UPDATE wallets SET active = FALSE, updated_at = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, updatedAt)
	return err
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var (
		wallet  domain.Wallet
		balance pgtype.Numeric
	)

	err := row.Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Name,
		&balance,
		&wallet.Active,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	wallet.Balance = numericToDecimal(balance)

	return &wallet, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
