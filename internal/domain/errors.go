package domain

import (
	"errors"
	"fmt"
)

var (
	// Model output errors
	ErrMalformedModelOutput = errors.New("model output could not be parsed into the expected envelope")
	ErrExtractionParse      = errors.New("extraction response could not be parsed as JSON")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserNotRegistered = errors.New("user is not registered")

	// Wallet errors
	ErrDuplicateWalletName = errors.New("an active wallet with this name already exists")
	ErrInvalidWalletName   = errors.New("wallet name must not be empty")
	ErrSameWallet          = errors.New("cannot transfer to the same wallet")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrWalletInactive      = errors.New("wallet is not active")

	// Confirmation errors
	ErrNothingPending = errors.New("no pending transaction to confirm")

	// Persistence errors
	ErrCommitFailed = errors.New("could not save transactions")
)

// WalletNotFoundError reports which wallet name failed to resolve so the
// user can be told exactly what to create.
type WalletNotFoundError struct {
	Name string
}

func (e *WalletNotFoundError) Error() string {
	return fmt.Sprintf("wallet %q not found", e.Name)
}

// ValidationError describes a single candidate field that failed validation.
// A batch containing any invalid candidate is rejected as a whole.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("candidate %d: %s %s", e.Index, e.Field, e.Reason)
}
