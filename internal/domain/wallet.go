package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a named balance bucket owned by exactly one user.
// Among a user's active wallets the name is unique case-insensitively.
// Balance is mutated only inside a ledger commit transaction.
type Wallet struct {
	ID        string
	UserID    string
	Name      string
	Balance   decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WalletSnapshot is the wallet view captured into the pending state at
// extraction time, so confirmation can resolve wallets without another
// database round trip.
type WalletSnapshot struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Snapshot converts a wallet to its pending-state view.
func (w *Wallet) Snapshot() WalletSnapshot {
	return WalletSnapshot{ID: w.ID, Name: w.Name, Balance: w.Balance}
}

// ResolveWallet matches a free-text wallet name against a snapshot list,
// case-insensitively. Names are unique per user by construction, so the
// first match is deterministic. No match is an explicit failure: the
// resolver never defaults to an arbitrary wallet and never creates one.
func ResolveWallet(name string, wallets []WalletSnapshot) (WalletSnapshot, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, w := range wallets {
		if strings.ToLower(w.Name) == want {
			return w, nil
		}
	}

	return WalletSnapshot{}, &WalletNotFoundError{Name: name}
}
