package usecase

import (
	"context"
	"time"

	"duitbot/internal/domain"
)

// ReportUseCase aggregates committed cashflow totals.
type ReportUseCase struct {
	cashflowRepo CashflowRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(cashflowRepo CashflowRepository) *ReportUseCase {
	return &ReportUseCase{cashflowRepo: cashflowRepo}
}

// ReportInput represents input for a report summary.
type ReportInput struct {
	UserID    string
	Start     time.Time
	End       time.Time
	FlowTypes []domain.FlowType
	WalletID  string
}

// Summarize returns the total committed amount per flow type over the
// range. A missing range defaults to the last 7 days.
func (uc *ReportUseCase) Summarize(ctx context.Context, input ReportInput) ([]domain.FlowTotal, error) {
	if input.End.IsZero() {
		input.End = time.Now().UTC()
	}
	if input.Start.IsZero() {
		input.Start = input.End.AddDate(0, 0, -7)
	}

	return uc.cashflowRepo.SummarizeByFlowType(ctx, input.UserID, input.Start, input.End, input.FlowTypes, input.WalletID)
}
