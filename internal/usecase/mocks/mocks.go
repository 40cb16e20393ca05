package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
	"duitbot/internal/usecase"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*domain.User

	CreateFunc          func(ctx context.Context, user *domain.User) error
	GetByTelegramIDFunc func(ctx context.Context, telegramID int64) (*domain.User, error)
	DeactivateFunc      func(ctx context.Context, id string, updatedAt time.Time) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[int64]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.TelegramID] = user
	return nil
}

func (m *MockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	if m.GetByTelegramIDFunc != nil {
		return m.GetByTelegramIDFunc(ctx, telegramID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[telegramID]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Deactivate(ctx context.Context, id string, updatedAt time.Time) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, updatedAt)
	}
	return nil
}

// MockWalletRepository is a mock implementation of WalletRepository.
type MockWalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet

	CreateFunc            func(ctx context.Context, wallet *domain.Wallet) error
	ListActiveByUserFunc  func(ctx context.Context, userID string) ([]*domain.Wallet, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Wallet, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	DeactivateFunc        func(ctx context.Context, id string, updatedAt time.Time) error

	BalanceWrites []BalanceWrite
}

// BalanceWrite records one UpdateBalance call for assertions.
type BalanceWrite struct {
	WalletID string
	Balance  decimal.Decimal
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{wallets: make(map[string]*domain.Wallet)}
}

func (m *MockWalletRepository) Add(wallet *domain.Wallet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[wallet.ID] = wallet
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, wallet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[wallet.ID] = wallet
	return nil
}

func (m *MockWalletRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Wallet, error) {
	if m.ListActiveByUserFunc != nil {
		return m.ListActiveByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Wallet
	for _, w := range m.wallets {
		if w.UserID == userID && w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *MockWalletRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[id]; ok {
		return w, nil
	}
	return nil, &domain.WalletNotFoundError{Name: id}
}

func (m *MockWalletRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Wallet, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Wallet
	for _, id := range ids {
		if w, ok := m.wallets[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BalanceWrites = append(m.BalanceWrites, BalanceWrite{WalletID: id, Balance: balance})
	if w, ok := m.wallets[id]; ok {
		w.Balance = balance
		w.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockWalletRepository) Deactivate(ctx context.Context, id string, updatedAt time.Time) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wallets[id]; ok {
		w.Active = false
	}
	return nil
}

// MockCashflowRepository is a mock implementation of CashflowRepository.
type MockCashflowRepository struct {
	mu      sync.RWMutex
	Entries []*domain.CashflowEntry

	CreateFunc              func(ctx context.Context, tx usecase.Transaction, entry *domain.CashflowEntry) error
	ListByUserFunc          func(ctx context.Context, userID string, limit, offset int) ([]*domain.CashflowEntry, error)
	SummarizeByFlowTypeFunc func(ctx context.Context, userID string, start, end time.Time, flowTypes []domain.FlowType, walletID string) ([]domain.FlowTotal, error)
}

func NewMockCashflowRepository() *MockCashflowRepository {
	return &MockCashflowRepository{}
}

func (m *MockCashflowRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.CashflowEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockCashflowRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.CashflowEntry, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Entries, nil
}

func (m *MockCashflowRepository) SummarizeByFlowType(ctx context.Context, userID string, start, end time.Time, flowTypes []domain.FlowType, walletID string) ([]domain.FlowTotal, error) {
	if m.SummarizeByFlowTypeFunc != nil {
		return m.SummarizeByFlowTypeFunc(ctx, userID, start, end, flowTypes, walletID)
	}
	return nil, nil
}

// MockPendingStore is an in-memory mock of PendingStore.
type MockPendingStore struct {
	mu     sync.Mutex
	states map[int64]*domain.PendingState

	PutFunc         func(ctx context.Context, telegramID int64, state *domain.PendingState, ttl time.Duration) error
	GetFunc         func(ctx context.Context, telegramID int64) (*domain.PendingState, error)
	GetAndClearFunc func(ctx context.Context, telegramID int64) (*domain.PendingState, error)
	ClearFunc       func(ctx context.Context, telegramID int64) error
}

func NewMockPendingStore() *MockPendingStore {
	return &MockPendingStore{states: make(map[int64]*domain.PendingState)}
}

func (m *MockPendingStore) Put(ctx context.Context, telegramID int64, state *domain.PendingState, ttl time.Duration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, telegramID, state, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[telegramID] = state
	return nil
}

func (m *MockPendingStore) Get(ctx context.Context, telegramID int64) (*domain.PendingState, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, telegramID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[telegramID], nil
}

func (m *MockPendingStore) GetAndClear(ctx context.Context, telegramID int64) (*domain.PendingState, error) {
	if m.GetAndClearFunc != nil {
		return m.GetAndClearFunc(ctx, telegramID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	state := m.states[telegramID]
	delete(m.states, telegramID)
	return state, nil
}

func (m *MockPendingStore) Clear(ctx context.Context, telegramID int64) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, telegramID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, telegramID)
	return nil
}

func (m *MockPendingStore) AppendMessage(ctx context.Context, telegramID int64, role domain.ChatRole, text string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := m.states[telegramID]
	if state == nil {
		state = &domain.PendingState{TelegramID: telegramID}
		m.states[telegramID] = state
	}
	state.AppendMessage(role, text, time.Now().UTC())
	return nil
}

// Stored returns the state currently held for a user, for assertions.
func (m *MockPendingStore) Stored(telegramID int64) *domain.PendingState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[telegramID]
}

// MockIntentClassifier is a mock implementation of IntentClassifier.
type MockIntentClassifier struct {
	ClassifyFunc func(ctx context.Context, text string) (domain.IntentResult, error)
}

func NewMockIntentClassifier() *MockIntentClassifier {
	return &MockIntentClassifier{}
}

func (m *MockIntentClassifier) Classify(ctx context.Context, text string) (domain.IntentResult, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return domain.OtherIntent{}, nil
}

// MockTransactionExtractor is a mock implementation of TransactionExtractor.
type MockTransactionExtractor struct {
	ExtractTextFunc    func(ctx context.Context, text string, history []domain.ChatMessage, asOf time.Time) ([]domain.TransactionCandidate, error)
	ExtractReceiptFunc func(ctx context.Context, image []byte, mimeType string, asOf time.Time) ([]domain.TransactionCandidate, error)
}

func NewMockTransactionExtractor() *MockTransactionExtractor {
	return &MockTransactionExtractor{}
}

func (m *MockTransactionExtractor) ExtractText(ctx context.Context, text string, history []domain.ChatMessage, asOf time.Time) ([]domain.TransactionCandidate, error) {
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, text, history, asOf)
	}
	return nil, nil
}

func (m *MockTransactionExtractor) ExtractReceipt(ctx context.Context, image []byte, mimeType string, asOf time.Time) ([]domain.TransactionCandidate, error) {
	if m.ExtractReceiptFunc != nil {
		return m.ExtractReceiptFunc(ctx, image, mimeType, asOf)
	}
	return nil, nil
}

// MockTransaction is a mock database transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock TransactionManager that hands out
// MockTransactions and remembers them for assertions.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator is a mock IDGenerator producing sequential ids.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockRetrier runs the operation once, without backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
