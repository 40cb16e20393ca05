package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
)

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Deactivate(ctx context.Context, id string, updatedAt time.Time) error
}

// WalletRepository defines data access for wallets.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Wallet, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	Deactivate(ctx context.Context, id string, updatedAt time.Time) error
}

// CashflowRepository defines data access for committed ledger entries.
type CashflowRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.CashflowEntry) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.CashflowEntry, error)
	SummarizeByFlowType(ctx context.Context, userID string, start, end time.Time, flowTypes []domain.FlowType, walletID string) ([]domain.FlowTotal, error)
}

// PendingStore holds the per-user unconfirmed state with a sliding TTL.
// Absent-on-read returns (nil, nil): it is a normal outcome, not an error.
type PendingStore interface {
	Put(ctx context.Context, telegramID int64, state *domain.PendingState, ttl time.Duration) error
	Get(ctx context.Context, telegramID int64) (*domain.PendingState, error)
	// GetAndClear atomically reads and removes the state, so a concurrent
	// duplicate confirmation observes "nothing pending".
	GetAndClear(ctx context.Context, telegramID int64) (*domain.PendingState, error)
	Clear(ctx context.Context, telegramID int64) error
	AppendMessage(ctx context.Context, telegramID int64, role domain.ChatRole, text string, ttl time.Duration) error
}

// IntentClassifier turns a raw message into a tagged intent result.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (domain.IntentResult, error)
}

// TransactionExtractor turns a message believed to describe transactions
// into an ordered, validated list of candidates.
type TransactionExtractor interface {
	ExtractText(ctx context.Context, text string, history []domain.ChatMessage, asOf time.Time) ([]domain.TransactionCandidate, error)
	ExtractReceipt(ctx context.Context, image []byte, mimeType string, asOf time.Time) ([]domain.TransactionCandidate, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient persistence errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
