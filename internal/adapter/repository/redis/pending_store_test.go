package redis

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
)

func testState(telegramID int64) *domain.PendingState {
	price := decimal.NewFromInt(15000)

	return &domain.PendingState{
		TelegramID: telegramID,
		UserID:     "user-1",
		Candidates: []domain.TransactionCandidate{
			{
				Date:         time.Date(2025, 7, 14, 14, 20, 21, 0, time.UTC),
				ActivityName: "nasi uduk",
				Quantity:     decimal.NewFromInt(20),
				Unit:         "porsi",
				FlowType:     domain.FlowIncome,
				ItemType:     domain.ItemProduct,
				Price:        &price,
				WalletName:   "cash",
			},
		},
		Wallets: []domain.WalletSnapshot{
			{ID: "w1", Name: "cash", Balance: decimal.NewFromInt(100000)},
		},
	}
}

func TestPendingStorePutAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPendingStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, 42, testState(42), time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected state, got nil")
	}
	if got.UserID != "user-1" || len(got.Candidates) != 1 {
		t.Fatalf("unexpected state: %+v", got)
	}

	c := got.Candidates[0]
	if c.ActivityName != "nasi uduk" || c.Price == nil || !c.Price.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("candidate did not round-trip: %+v", c)
	}
	if len(got.Wallets) != 1 || got.Wallets[0].ID != "w1" {
		t.Fatalf("wallet snapshot did not round-trip: %+v", got.Wallets)
	}
}

func TestPendingStoreGetAbsent(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPendingStore(client)

	got, err := store.Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected no error for absent key, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil state, got %+v", got)
	}
}

func TestPendingStoreGetAndClearConsumesOnce(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPendingStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, 42, testState(42), time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	first, err := store.GetAndClear(ctx, 42)
	if err != nil {
		t.Fatalf("first GetAndClear failed: %v", err)
	}
	if first == nil {
		t.Fatal("expected state on first consume")
	}

	second, err := store.GetAndClear(ctx, 42)
	if err != nil {
		t.Fatalf("second GetAndClear failed: %v", err)
	}
	if second != nil {
		t.Fatalf("expected nil on second consume, got %+v", second)
	}
}

func TestPendingStoreExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPendingStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, 42, testState(42), time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired state to be gone, got %+v", got)
	}
}

func TestPendingStoreAppendMessageSlidesTTL(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPendingStore(client)
	ctx := context.Background()

	if err := store.Put(ctx, 42, testState(42), time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	mr.FastForward(40 * time.Second)

	if err := store.AppendMessage(ctx, 42, domain.RoleUser, "dan kemarin beli gas 20 ribu", time.Minute); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	// Past the original deadline but within the re-armed one.
	mr.FastForward(40 * time.Second)

	got, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected state to survive after TTL re-arm")
	}
	if len(got.Messages) != 1 || got.Messages[0].Text != "dan kemarin beli gas 20 ribu" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
}

func TestPendingStoreHistoryCap(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPendingStore(client)
	ctx := context.Background()

	for i := 0; i < domain.MaxHistoryMessages+5; i++ {
		if err := store.AppendMessage(ctx, 42, domain.RoleUser, "pesan", time.Minute); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	got, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Messages) != domain.MaxHistoryMessages {
		t.Fatalf("expected history capped at %d, got %d", domain.MaxHistoryMessages, len(got.Messages))
	}
}
