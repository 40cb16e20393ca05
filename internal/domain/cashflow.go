package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowEntry is one committed transaction record. Entries are
// append-only: corrections are modeled as new entries, never in-place
// edits, so the balance history stays auditable. Total is computed once
// at commit time and never recomputed.
type CashflowEntry struct {
	ID              string
	UserID          string
	WalletID        string
	TransactionDate time.Time
	ActivityName    string
	Description     string
	CategoryID      int64
	Quantity        decimal.Decimal
	Unit            string
	FlowType        FlowType
	Price           decimal.Decimal
	Total           decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FlowTotal is an aggregate of committed totals for one flow type,
// used by report summaries.
type FlowTotal struct {
	FlowType FlowType
	Total    decimal.Decimal
}
