package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"duitbot/internal/domain"
	"duitbot/internal/infrastructure/metrics"
)

// ConfirmationUseCase drives the pending → confirmed/rejected lifecycle
// and owns the ledger commit. The pending state is cleared atomically on
// read, before the commit runs: a duplicate confirmation arriving while
// the first is mid-commit observes "nothing pending" instead of
// re-committing. At worst a duplicate tap loses its notification, never
// a balance.
type ConfirmationUseCase struct {
	pending      PendingStore
	txManager    TransactionManager
	walletRepo   WalletRepository
	cashflowRepo CashflowRepository
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewConfirmationUseCase creates a new ConfirmationUseCase.
func NewConfirmationUseCase(
	pending PendingStore,
	txManager TransactionManager,
	walletRepo WalletRepository,
	cashflowRepo CashflowRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *ConfirmationUseCase {
	return &ConfirmationUseCase{
		pending:      pending,
		txManager:    txManager,
		walletRepo:   walletRepo,
		cashflowRepo: cashflowRepo,
		idGen:        idGen,
		retrier:      retrier,
		metrics:      metrics,
	}
}

// HandleConfirmation processes a confirm/reject decision. decision is the
// callback value of the button the user tapped. Known failures are
// recovered into a user-facing reply; the returned error is the cause,
// for logging.
func (uc *ConfirmationUseCase) HandleConfirmation(ctx context.Context, telegramID int64, decision string) (Reply, error) {
	state, err := uc.pending.GetAndClear(ctx, telegramID)
	if err != nil {
		return Reply{Body: msgServerError}, err
	}

	if state == nil || len(state.Candidates) == 0 {
		// Expired, already consumed, or never set. A defined outcome,
		// not an error.
		if uc.metrics != nil {
			uc.metrics.CommitsExpired.Inc()
		}

		return Reply{Body: msgNothingPending}, nil
	}

	switch decision {
	case CallbackConfirmNo:
		if uc.metrics != nil {
			uc.metrics.CommitsRejected.Inc()
		}

		return Reply{Body: msgRejected}, nil

	case CallbackConfirmYes:
		return uc.commit(ctx, state)

	default:
		return Reply{Body: msgNothingPending}, nil
	}
}

// commit resolves the batch's wallet and persists the batch atomically.
// The first candidate's wallet name is authoritative for the whole batch.
func (uc *ConfirmationUseCase) commit(ctx context.Context, state *domain.PendingState) (Reply, error) {
	start := time.Now()

	wallet, err := domain.ResolveWallet(state.Candidates[0].WalletName, state.Wallets)
	if err != nil {
		var nf *domain.WalletNotFoundError
		if errors.As(err, &nf) {
			if uc.metrics != nil {
				uc.metrics.CommitFailures.WithLabelValues("wallet_not_found").Inc()
			}

			return Reply{Body: fmt.Sprintf(msgWalletNotFoundFmt, nf.Name, nf.Name)}, err
		}

		return Reply{Body: msgServerError}, err
	}

	commitOnce := func() error {
		return uc.commitBatch(ctx, state, wallet.ID)
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, commitOnce)
	} else {
		err = commitOnce()
	}

	if err != nil {
		// State is already cleared: the user re-describes the
		// transaction instead of replaying a poisoned batch.
		if uc.metrics != nil {
			uc.metrics.CommitFailures.WithLabelValues("db").Inc()
		}

		return Reply{Body: msgSaveFailed}, fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}

	if uc.metrics != nil {
		uc.metrics.CommitsConfirmed.Inc()
		uc.metrics.CommitDuration.Observe(time.Since(start).Seconds())
	}

	return Reply{Body: msgSaved}, nil
}

// commitBatch persists every candidate as a cashflow entry and applies
// the net balance delta to the wallet, all in one transaction. Either
// everything lands or nothing does.
func (uc *ConfirmationUseCase) commitBatch(ctx context.Context, state *domain.PendingState, walletID string) error {
	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock the wallet row so the delta applies to a fresh balance.
	wallet, err := uc.walletRepo.GetByIDForUpdate(ctx, tx, walletID)
	if err != nil {
		return err
	}

	for i := range state.Candidates {
		c := &state.Candidates[i]

		entry := &domain.CashflowEntry{
			ID:              uc.idGen.Generate(),
			UserID:          state.UserID,
			WalletID:        wallet.ID,
			TransactionDate: c.Date,
			ActivityName:    c.ActivityName,
			Description:     "",
			CategoryID:      1,
			Quantity:        c.Quantity,
			Unit:            c.Unit,
			FlowType:        c.FlowType,
			Price:           *c.Price,
			Total:           c.Total(),
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := uc.cashflowRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
	}

	// One balance write per batch, not per line-item.
	delta := domain.AccumulateDelta(state.Candidates)
	newBalance := wallet.Balance.Sub(delta)

	if err := uc.walletRepo.UpdateBalance(ctx, tx, wallet.ID, newBalance, now); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
