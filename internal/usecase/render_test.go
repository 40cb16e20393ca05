package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
)

func TestRenderCandidatePreviewGroupsByDate(t *testing.T) {
	price := decimal.NewFromInt(15000)
	d1 := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

	candidates := []domain.TransactionCandidate{
		{Date: d1, ActivityName: "nasi uduk", Quantity: decimal.NewFromInt(20), Unit: "porsi", FlowType: domain.FlowIncome, Price: &price},
		{Date: d2, ActivityName: "beli gas", Quantity: decimal.NewFromInt(1), Unit: "unit", FlowType: domain.FlowExpense, Price: &price},
		{Date: d1, ActivityName: "es teh", Quantity: decimal.NewFromInt(5), Unit: "gelas", FlowType: domain.FlowIncome, Price: &price},
	}

	out := renderCandidatePreview(candidates)

	if strings.Count(out, "📅 Tanggal") != 2 {
		t.Errorf("expected 2 date groups, got:\n%s", out)
	}
	if !strings.Contains(out, "(in) nasi uduk") {
		t.Errorf("expected income label, got:\n%s", out)
	}
	if !strings.Contains(out, "(out) beli gas") {
		t.Errorf("expected expense label, got:\n%s", out)
	}

	// Input order decides group order: the 14th before the 15th.
	if strings.Index(out, "2025-07-14") > strings.Index(out, "2025-07-15") {
		t.Errorf("expected date groups in input order, got:\n%s", out)
	}
	if !strings.Contains(out, "300000") {
		t.Errorf("expected line total 300000, got:\n%s", out)
	}
}

func TestRenderWalletSummaryEmpty(t *testing.T) {
	out := renderWalletSummary(nil)
	if !strings.Contains(out, "tambah wallet") {
		t.Errorf("expected creation hint, got %q", out)
	}
}

func TestRenderWalletSummaryTotals(t *testing.T) {
	wallets := []*domain.Wallet{
		{Name: "cash", Balance: decimal.NewFromInt(150000)},
		{Name: "bank bri", Balance: decimal.NewFromInt(-20000)},
	}

	out := renderWalletSummary(wallets)
	if !strings.Contains(out, "130000.00") {
		t.Errorf("expected total 130000.00, got:\n%s", out)
	}
	if !strings.Contains(out, "-20000.00") {
		t.Errorf("expected negative balance shown, got:\n%s", out)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	out := renderReport("2025-07-01", "2025-07-31", nil)
	if !strings.Contains(out, "Tidak ada transaksi") {
		t.Errorf("expected empty-range message, got %q", out)
	}
}
