package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
	"duitbot/internal/infrastructure/metrics"
)

// WalletUseCase handles wallet management: creation with case-insensitive
// name uniqueness and atomic transfers between a user's wallets.
type WalletUseCase struct {
	txManager    TransactionManager
	walletRepo   WalletRepository
	cashflowRepo CashflowRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	cashflowRepo CashflowRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *WalletUseCase {
	return &WalletUseCase{
		txManager:    txManager,
		walletRepo:   walletRepo,
		cashflowRepo: cashflowRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// CreateWalletInput represents input for creating a wallet.
type CreateWalletInput struct {
	UserID         string
	Name           string
	InitialBalance decimal.Decimal
}

// CreateWallet creates a wallet. A name that matches an existing active
// wallet case-insensitively is rejected; the database's partial unique
// index backstops this check under races.
func (uc *WalletUseCase) CreateWallet(ctx context.Context, input CreateWalletInput) (*domain.Wallet, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidWalletName
	}

	existing, err := uc.walletRepo.ListActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	for _, w := range existing {
		if strings.EqualFold(w.Name, name) {
			return nil, domain.ErrDuplicateWalletName
		}
	}

	now := time.Now().UTC()

	wallet := &domain.Wallet{
		ID:        uc.idGen.Generate(),
		UserID:    input.UserID,
		Name:      name,
		Balance:   input.InitialBalance,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WalletsCreated.Inc()
	}

	return wallet, nil
}

// ListWallets lists the user's active wallets.
func (uc *WalletUseCase) ListWallets(ctx context.Context, userID string) ([]*domain.Wallet, error) {
	return uc.walletRepo.ListActiveByUser(ctx, userID)
}

// TransferWalletInput represents input for a wallet-to-wallet transfer.
type TransferWalletInput struct {
	UserID       string
	SourceWallet string
	TargetWallet string
	Amount       decimal.Decimal
	Fee          decimal.Decimal
}

// TransferBetweenWallets moves an amount between two of the user's
// wallets in one transaction, recording paired transfer entries. The fee,
// if any, is debited from the source as an expense entry.
func (uc *WalletUseCase) TransferBetweenWallets(ctx context.Context, input TransferWalletInput) error {
	if !input.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if input.Fee.IsNegative() {
		return domain.ErrInvalidAmount
	}

	wallets, err := uc.walletRepo.ListActiveByUser(ctx, input.UserID)
	if err != nil {
		return err
	}

	snapshots := make([]domain.WalletSnapshot, 0, len(wallets))
	for _, w := range wallets {
		snapshots = append(snapshots, w.Snapshot())
	}

	source, err := domain.ResolveWallet(input.SourceWallet, snapshots)
	if err != nil {
		return err
	}

	target, err := domain.ResolveWallet(input.TargetWallet, snapshots)
	if err != nil {
		return err
	}

	if source.ID == target.ID {
		return domain.ErrSameWallet
	}

	// Lock rows in sorted ID order to prevent deadlocks between
	// concurrent transfers.
	ids := []string{source.ID, target.ID}
	sort.Strings(ids)

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	locked, err := uc.walletRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return err
	}
	if len(locked) != len(ids) {
		return &domain.WalletNotFoundError{Name: input.SourceWallet}
	}

	byID := make(map[string]*domain.Wallet, len(locked))
	for _, w := range locked {
		byID[w.ID] = w
	}

	sourceWallet, targetWallet := byID[source.ID], byID[target.ID]
	if sourceWallet == nil || targetWallet == nil {
		return &domain.WalletNotFoundError{Name: input.SourceWallet}
	}

	outTotal := input.Amount
	entries := []*domain.CashflowEntry{
		{
			ID:              uc.idGen.Generate(),
			UserID:          input.UserID,
			WalletID:        sourceWallet.ID,
			TransactionDate: now,
			ActivityName:    fmt.Sprintf("transfer ke %s", targetWallet.Name),
			CategoryID:      1,
			Quantity:        decimal.NewFromInt(1),
			Unit:            domain.DefaultUnit,
			FlowType:        domain.FlowTransfer,
			Price:           outTotal,
			Total:           outTotal,
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uc.idGen.Generate(),
			UserID:          input.UserID,
			WalletID:        targetWallet.ID,
			TransactionDate: now,
			ActivityName:    fmt.Sprintf("transfer dari %s", sourceWallet.Name),
			CategoryID:      1,
			Quantity:        decimal.NewFromInt(1),
			Unit:            domain.DefaultUnit,
			FlowType:        domain.FlowTransfer,
			Price:           input.Amount,
			Total:           input.Amount,
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	if input.Fee.IsPositive() {
		entries = append(entries, &domain.CashflowEntry{
			ID:              uc.idGen.Generate(),
			UserID:          input.UserID,
			WalletID:        sourceWallet.ID,
			TransactionDate: now,
			ActivityName:    "biaya transfer",
			CategoryID:      1,
			Quantity:        decimal.NewFromInt(1),
			Unit:            domain.DefaultUnit,
			FlowType:        domain.FlowExpense,
			Price:           input.Fee,
			Total:           input.Fee,
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	for _, entry := range entries {
		if err := uc.cashflowRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
	}

	newSource := sourceWallet.Balance.Sub(input.Amount).Sub(input.Fee)
	if err := uc.walletRepo.UpdateBalance(ctx, tx, sourceWallet.ID, newSource, now); err != nil {
		return err
	}

	newTarget := targetWallet.Balance.Add(input.Amount)
	if err := uc.walletRepo.UpdateBalance(ctx, tx, targetWallet.ID, newTarget, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.Transfers.Inc()
	}

	return nil
}
