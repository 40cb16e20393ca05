package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func validCandidate() domain.TransactionCandidate {
	return domain.TransactionCandidate{
		ActivityName: "nasi uduk",
		Quantity:     dec("20"),
		Unit:         "porsi",
		FlowType:     domain.FlowIncome,
		ItemType:     domain.ItemProduct,
		Price:        decPtr("15000"),
		WalletName:   "cash",
	}
}

func TestCandidateValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.TransactionCandidate)
		wantErr  bool
		wantField string
	}{
		{
			name:   "valid candidate",
			mutate: func(c *domain.TransactionCandidate) {},
		},
		{
			name:      "empty activity name",
			mutate:    func(c *domain.TransactionCandidate) { c.ActivityName = "" },
			wantErr:   true,
			wantField: "activityName",
		},
		{
			name:      "zero quantity",
			mutate:    func(c *domain.TransactionCandidate) { c.Quantity = decimal.Zero },
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name:      "negative quantity",
			mutate:    func(c *domain.TransactionCandidate) { c.Quantity = dec("-1") },
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name:      "unknown flow type",
			mutate:    func(c *domain.TransactionCandidate) { c.FlowType = "loan" },
			wantErr:   true,
			wantField: "flowType",
		},
		{
			name:      "missing price is rejected",
			mutate:    func(c *domain.TransactionCandidate) { c.Price = nil },
			wantErr:   true,
			wantField: "price",
		},
		{
			name:      "negative price",
			mutate:    func(c *domain.TransactionCandidate) { c.Price = decPtr("-5") },
			wantErr:   true,
			wantField: "price",
		},
		{
			name:   "zero price is allowed",
			mutate: func(c *domain.TransactionCandidate) { c.Price = decPtr("0") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			err := c.Validate(3)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
			if vErr.Index != 3 {
				t.Errorf("expected index 3, got %d", vErr.Index)
			}
		})
	}
}

func TestCandidateTotal(t *testing.T) {
	c := validCandidate()

	if got := c.Total(); !got.Equal(dec("300000")) {
		t.Fatalf("expected total 300000, got %s", got)
	}

	c.Quantity = dec("0.5")
	c.Price = decPtr("19.99")
	if got := c.Total(); !got.Equal(dec("9.995")) {
		t.Fatalf("expected exact fixed-point total 9.995, got %s", got)
	}

	c.Price = nil
	if got := c.Total(); !got.IsZero() {
		t.Fatalf("expected zero total without price, got %s", got)
	}
}

func TestValidateCandidatesRejectsWholeBatch(t *testing.T) {
	good := validCandidate()
	bad := validCandidate()
	bad.Quantity = decimal.Zero

	err := domain.ValidateCandidates([]domain.TransactionCandidate{good, bad, good})

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Index != 1 {
		t.Errorf("expected failing index 1, got %d", vErr.Index)
	}
}

func TestAccumulateDelta(t *testing.T) {
	income := validCandidate() // total 300000, income

	expense := validCandidate()
	expense.FlowType = domain.FlowExpense
	expense.Quantity = dec("1")
	expense.Price = decPtr("50000")

	transfer := validCandidate()
	transfer.FlowType = domain.FlowTransfer
	transfer.Quantity = dec("1")
	transfer.Price = decPtr("99999")

	tests := []struct {
		name       string
		candidates []domain.TransactionCandidate
		want       string
	}{
		{"income subtracts", []domain.TransactionCandidate{income}, "-300000"},
		{"expense adds", []domain.TransactionCandidate{expense}, "50000"},
		{"transfer is neutral", []domain.TransactionCandidate{transfer}, "0"},
		{"mixed batch", []domain.TransactionCandidate{income, expense}, "-250000"},
		{"empty batch", nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.AccumulateDelta(tt.candidates)
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("expected delta %s, got %s", tt.want, got)
			}
		})
	}
}
