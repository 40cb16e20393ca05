package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"duitbot/internal/domain"
	"duitbot/internal/usecase"
)

// CashflowRepository implements usecase.CashflowRepository.
type CashflowRepository struct {
	pool *pgxpool.Pool
}

// NewCashflowRepository creates a new CashflowRepository.
func NewCashflowRepository(pool *pgxpool.Pool) *CashflowRepository {
	return &CashflowRepository{pool: pool}
}

// Create inserts a cashflow entry inside the caller's transaction. Commit
// and wallet balance always move together, so there is no pool variant.
func (r *CashflowRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.CashflowEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO cashflows (
			id, user_id, wallet_id, transaction_date, activity_name, description,
			category_id, quantity, unit, flow_type, price, total, active,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := pgxTx.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.WalletID,
		entry.TransactionDate,
		entry.ActivityName,
		entry.Description,
		entry.CategoryID,
		decimalToNumeric(entry.Quantity),
		entry.Unit,
		string(entry.FlowType),
		decimalToNumeric(entry.Price),
		decimalToNumeric(entry.Total),
		entry.Active,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return err
}

// ListByUser retrieves a user's entries, newest first, with pagination.
func (r *CashflowRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.CashflowEntry, error) {
	query := `
		SELECT id, user_id, wallet_id, transaction_date, activity_name, description,
		       category_id, quantity, unit, flow_type, price, total, active,
		       created_at, updated_at
		FROM cashflows
		WHERE user_id = $1 AND active = TRUE
		ORDER BY transaction_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.CashflowEntry
	for rows.Next() {
		var (
			entry                  domain.CashflowEntry
			quantity, price, total pgtype.Numeric
			flowType               string
		)

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.WalletID,
			&entry.TransactionDate,
			&entry.ActivityName,
			&entry.Description,
			&entry.CategoryID,
			&quantity,
			&entry.Unit,
			&flowType,
			&price,
			&total,
			&entry.Active,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Quantity = numericToDecimal(quantity)
		entry.Price = numericToDecimal(price)
		entry.Total = numericToDecimal(total)
		entry.FlowType = domain.FlowType(flowType)

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// SummarizeByFlowType aggregates entry totals per flow type over a date
// range. An empty flowTypes slice means all; an empty walletID means all
// of the user's wallets.
func (r *CashflowRepository) SummarizeByFlowType(ctx context.Context, userID string, start, end time.Time, flowTypes []domain.FlowType, walletID string) ([]domain.FlowTotal, error) {
	query := `
		SELECT flow_type, COALESCE(SUM(total), 0)
		FROM cashflows
		WHERE user_id = $1
		  AND active = TRUE
		  AND transaction_date >= $2
		  AND transaction_date <= $3
		  AND (cardinality($4::text[]) = 0 OR flow_type = ANY($4))
		  AND ($5 = '' OR wallet_id = $5)
		GROUP BY flow_type
		ORDER BY flow_type
	`

	names := make([]string, 0, len(flowTypes))
	for _, ft := range flowTypes {
		names = append(names, string(ft))
	}

	rows, err := r.pool.Query(ctx, query, userID, start, end, names, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.FlowTotal
	for rows.Next() {
		var (
			flowType string
			total    pgtype.Numeric
		)

		if err := rows.Scan(&flowType, &total); err != nil {
			return nil, err
		}

		totals = append(totals, domain.FlowTotal{
			FlowType: domain.FlowType(flowType),
			Total:    numericToDecimal(total),
		})
	}

	return totals, rows.Err()
}
