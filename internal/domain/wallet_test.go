package domain_test

import (
	"errors"
	"testing"
	"time"

	"duitbot/internal/domain"
)

func TestResolveWallet(t *testing.T) {
	wallets := []domain.WalletSnapshot{
		{ID: "w1", Name: "cash", Balance: dec("100000")},
		{ID: "w2", Name: "Bank BRI", Balance: dec("50000")},
	}

	tests := []struct {
		name    string
		lookup  string
		wantID  string
		wantErr bool
	}{
		{"exact match", "cash", "w1", false},
		{"case-insensitive match", "BANK bri", "w2", false},
		{"surrounding whitespace", "  cash ", "w1", false},
		{"no match fails explicitly", "Gopay", "", true},
		{"no partial match", "bank", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolveWallet(tt.lookup, wallets)

			if tt.wantErr {
				var nf *domain.WalletNotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected WalletNotFoundError, got %v", err)
				}
				if nf.Name != tt.lookup {
					t.Errorf("expected error to carry %q, got %q", tt.lookup, nf.Name)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("expected wallet %s, got %s", tt.wantID, got.ID)
			}
		})
	}
}

func TestResolveWalletEmptyList(t *testing.T) {
	_, err := domain.ResolveWallet("cash", nil)

	var nf *domain.WalletNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected WalletNotFoundError, got %v", err)
	}
}

func TestPendingStateAppendMessageCapsHistory(t *testing.T) {
	state := &domain.PendingState{TelegramID: 42}
	now := time.Now().UTC()

	for i := 0; i < domain.MaxHistoryMessages+5; i++ {
		state.AppendMessage(domain.RoleUser, "msg", now)
	}

	if len(state.Messages) != domain.MaxHistoryMessages {
		t.Fatalf("expected history capped at %d, got %d", domain.MaxHistoryMessages, len(state.Messages))
	}
}
