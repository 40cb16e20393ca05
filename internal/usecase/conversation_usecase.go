package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"duitbot/internal/domain"
	"duitbot/internal/infrastructure/metrics"
)

// ConversationUseCase handles inbound free-text messages: classifies the
// intent, runs extraction for transaction messages, and parks the result
// in the pending store until the user confirms or rejects it.
type ConversationUseCase struct {
	userRepo   UserRepository
	walletRepo WalletRepository
	pending    PendingStore
	classifier IntentClassifier
	extractor  TransactionExtractor
	walletUC   *WalletUseCase
	reportUC   *ReportUseCase
	pendingTTL time.Duration
	metrics    *metrics.Metrics
}

// NewConversationUseCase creates a new ConversationUseCase.
func NewConversationUseCase(
	userRepo UserRepository,
	walletRepo WalletRepository,
	pending PendingStore,
	classifier IntentClassifier,
	extractor TransactionExtractor,
	walletUC *WalletUseCase,
	reportUC *ReportUseCase,
	pendingTTL time.Duration,
	metrics *metrics.Metrics,
) *ConversationUseCase {
	return &ConversationUseCase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		pending:    pending,
		classifier: classifier,
		extractor:  extractor,
		walletUC:   walletUC,
		reportUC:   reportUC,
		pendingTTL: pendingTTL,
		metrics:    metrics,
	}
}

// HandleText processes one inbound text message and produces a reply.
// Known failures are recovered into a user-facing reply; the returned
// error, when non-nil, is the underlying cause for logging only.
func (uc *ConversationUseCase) HandleText(ctx context.Context, telegramID int64, text string) (Reply, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return Reply{Body: msgNotRegistered}, nil
		}

		return Reply{Body: msgServerError}, err
	}

	result, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		return Reply{Body: msgServerError}, err
	}

	if uc.metrics != nil {
		uc.metrics.IntentsDetected.WithLabelValues(string(result.Intent())).Inc()
	}

	switch v := result.(type) {
	case domain.RecordTransactionIntent:
		return uc.recordTransaction(ctx, user, text)

	case domain.QueryBalanceIntent:
		wallets, err := uc.walletRepo.ListActiveByUser(ctx, user.ID)
		if err != nil {
			return Reply{Body: msgServerError}, err
		}

		return Reply{Body: renderWalletSummary(wallets)}, nil

	case domain.RequestReportIntent:
		return uc.report(ctx, user, v)

	case domain.AddWalletIntent:
		wallet, err := uc.walletUC.CreateWallet(ctx, CreateWalletInput{
			UserID:         user.ID,
			Name:           v.Name,
			InitialBalance: v.InitialBalance,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateWalletName) {
				return Reply{Body: msgWalletDuplicate}, nil
			}
			if errors.Is(err, domain.ErrInvalidWalletName) {
				return Reply{Body: msgWalletNameEmpty}, nil
			}

			return Reply{Body: msgServerError}, err
		}

		return Reply{Body: fmt.Sprintf(msgWalletCreatedFmt, wallet.Name, wallet.Balance.StringFixed(2))}, nil

	case domain.TransferWalletIntent:
		return uc.transferWallet(ctx, user, v)

	case domain.OtherIntent:
		body := v.Reply
		if body == "" {
			body = msgIntentNotFound
		}

		// Small talk joins the rolling history so a follow-up
		// transaction can reference it.
		if err := uc.pending.AppendMessage(ctx, user.TelegramID, domain.RoleUser, text, uc.pendingTTL); err != nil {
			return Reply{Body: body}, err
		}
		if err := uc.pending.AppendMessage(ctx, user.TelegramID, domain.RoleModel, body, uc.pendingTTL); err != nil {
			return Reply{Body: body}, err
		}

		return Reply{Body: body}, nil

	default:
		return Reply{Body: msgIntentNotFound}, nil
	}
}

// HandlePhoto processes a receipt photo through the extraction path.
func (uc *ConversationUseCase) HandlePhoto(ctx context.Context, telegramID int64, image []byte, mimeType string) (Reply, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return Reply{Body: msgNotRegistered}, nil
		}

		return Reply{Body: msgServerError}, err
	}

	now := time.Now().UTC()

	candidates, err := uc.extractor.ExtractReceipt(ctx, image, mimeType, now)
	if err != nil {
		return uc.extractionFailure(err)
	}

	return uc.holdPending(ctx, user, "(foto struk)", candidates, now)
}

func (uc *ConversationUseCase) recordTransaction(ctx context.Context, user *domain.User, text string) (Reply, error) {
	now := time.Now().UTC()

	// Prior history lets the model resolve relative dates and
	// pronoun-style continuations. Absent state is fine.
	var history []domain.ChatMessage
	if prev, err := uc.pending.Get(ctx, user.TelegramID); err == nil && prev != nil {
		history = prev.Messages
	}

	candidates, err := uc.extractor.ExtractText(ctx, text, history, now)
	if err != nil {
		return uc.extractionFailure(err)
	}

	return uc.holdPending(ctx, user, text, candidates, now)
}

// holdPending snapshots the user's wallets, stores the candidate batch as
// the new pending state, and asks for confirmation.
func (uc *ConversationUseCase) holdPending(ctx context.Context, user *domain.User, text string, candidates []domain.TransactionCandidate, now time.Time) (Reply, error) {
	if len(candidates) == 0 {
		return Reply{Body: msgRetryExtraction}, nil
	}

	wallets, err := uc.walletRepo.ListActiveByUser(ctx, user.ID)
	if err != nil {
		return Reply{Body: msgServerError}, err
	}

	snapshots := make([]domain.WalletSnapshot, 0, len(wallets))
	for _, w := range wallets {
		snapshots = append(snapshots, w.Snapshot())
	}

	preview := renderCandidatePreview(candidates)

	state := &domain.PendingState{
		TelegramID: user.TelegramID,
		UserID:     user.ID,
		Candidates: candidates,
		Wallets:    snapshots,
	}
	state.AppendMessage(domain.RoleUser, text, now)
	state.AppendMessage(domain.RoleModel, preview, now)

	if err := uc.pending.Put(ctx, user.TelegramID, state, uc.pendingTTL); err != nil {
		return Reply{Body: msgServerError}, err
	}

	if uc.metrics != nil {
		uc.metrics.CandidatesHeld.Inc()
	}

	return Reply{
		Body: preview + msgConfirmQuestion,
		Buttons: []Button{
			{Label: "✅ Ya", Value: CallbackConfirmYes},
			{Label: "❌ Tidak", Value: CallbackConfirmNo},
		},
	}, nil
}

// extractionFailure maps extraction errors to user replies. No pending
// state is written: the user resubmits cleanly.
func (uc *ConversationUseCase) extractionFailure(err error) (Reply, error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		if uc.metrics != nil {
			uc.metrics.ExtractionFailures.WithLabelValues("validation").Inc()
		}

		return Reply{Body: fmt.Sprintf(msgInvalidBatchFmt, vErr.Field+" "+vErr.Reason)}, err
	}

	if errors.Is(err, domain.ErrExtractionParse) || errors.Is(err, domain.ErrMalformedModelOutput) {
		if uc.metrics != nil {
			uc.metrics.ExtractionFailures.WithLabelValues("parse").Inc()
		}

		return Reply{Body: msgRetryExtraction}, err
	}

	if uc.metrics != nil {
		uc.metrics.ExtractionFailures.WithLabelValues("model").Inc()
	}

	return Reply{Body: msgServerError}, err
}

func (uc *ConversationUseCase) report(ctx context.Context, user *domain.User, v domain.RequestReportIntent) (Reply, error) {
	if v.End.IsZero() {
		v.End = time.Now().UTC()
	}
	if v.Start.IsZero() {
		v.Start = v.End.AddDate(0, 0, -7)
	}

	input := ReportInput{
		UserID:    user.ID,
		Start:     v.Start,
		End:       v.End,
		FlowTypes: v.FlowTypes,
	}

	if v.Wallet != "" {
		wallets, err := uc.walletRepo.ListActiveByUser(ctx, user.ID)
		if err != nil {
			return Reply{Body: msgServerError}, err
		}

		snapshots := make([]domain.WalletSnapshot, 0, len(wallets))
		for _, w := range wallets {
			snapshots = append(snapshots, w.Snapshot())
		}

		resolved, err := domain.ResolveWallet(v.Wallet, snapshots)
		if err != nil {
			return Reply{Body: fmt.Sprintf(msgWalletNotFoundFmt, v.Wallet, v.Wallet)}, err
		}

		input.WalletID = resolved.ID
	}

	totals, err := uc.reportUC.Summarize(ctx, input)
	if err != nil {
		return Reply{Body: msgServerError}, err
	}

	return Reply{Body: renderReport(v.Start.Format("2006-01-02"), v.End.Format("2006-01-02"), totals)}, nil
}

func (uc *ConversationUseCase) transferWallet(ctx context.Context, user *domain.User, v domain.TransferWalletIntent) (Reply, error) {
	err := uc.walletUC.TransferBetweenWallets(ctx, TransferWalletInput{
		UserID:       user.ID,
		SourceWallet: v.SourceWallet,
		TargetWallet: v.TargetWallet,
		Amount:       v.Amount,
		Fee:          v.Fee,
	})
	if err != nil {
		var nf *domain.WalletNotFoundError
		switch {
		case errors.As(err, &nf):
			return Reply{Body: fmt.Sprintf(msgWalletNotFoundFmt, nf.Name, nf.Name)}, err
		case errors.Is(err, domain.ErrSameWallet):
			return Reply{Body: "❌ Wallet asal dan tujuan tidak boleh sama."}, nil
		case errors.Is(err, domain.ErrInvalidAmount):
			return Reply{Body: "❌ Nominal transfer harus lebih dari nol."}, nil
		default:
			return Reply{Body: msgSaveFailed}, err
		}
	}

	return Reply{Body: fmt.Sprintf(msgTransferDoneFmt, v.Amount.StringFixed(2), v.SourceWallet, v.TargetWallet)}, nil
}
