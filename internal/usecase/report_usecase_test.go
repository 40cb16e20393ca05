package usecase_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"duitbot/internal/domain"
	"duitbot/internal/usecase"
	"duitbot/internal/usecase/mocks"
)

func TestSummarizeExplicitRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	cashflowRepo := mocks.NewGoMockCashflowRepository(ctrl)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	want := []domain.FlowTotal{
		{FlowType: domain.FlowIncome, Total: dec("300000")},
		{FlowType: domain.FlowExpense, Total: dec("120000")},
	}

	cashflowRepo.EXPECT().
		SummarizeByFlowType(gomock.Any(), "u1", start, end, []domain.FlowType{domain.FlowIncome, domain.FlowExpense}, "w1").
		Return(want, nil)

	uc := usecase.NewReportUseCase(cashflowRepo)

	got, err := uc.Summarize(context.Background(), usecase.ReportInput{
		UserID:    "u1",
		Start:     start,
		End:       end,
		FlowTypes: []domain.FlowType{domain.FlowIncome, domain.FlowExpense},
		WalletID:  "w1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || !got[0].Total.Equal(dec("300000")) {
		t.Errorf("unexpected totals: %+v", got)
	}
}

func TestSummarizeDefaultsToLastSevenDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	cashflowRepo := mocks.NewGoMockCashflowRepository(ctrl)

	cashflowRepo.EXPECT().
		SummarizeByFlowType(gomock.Any(), "u1", gomock.Any(), gomock.Any(), gomock.Nil(), "").
		DoAndReturn(func(ctx context.Context, userID string, start, end time.Time, flowTypes []domain.FlowType, walletID string) ([]domain.FlowTotal, error) {
			if got := end.Sub(start); got != 7*24*time.Hour {
				t.Errorf("expected a 7-day window, got %s", got)
			}
			if time.Since(end) > time.Minute {
				t.Errorf("expected end near now, got %s", end)
			}
			return nil, nil
		})

	uc := usecase.NewReportUseCase(cashflowRepo)

	if _, err := uc.Summarize(context.Background(), usecase.ReportInput{UserID: "u1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
