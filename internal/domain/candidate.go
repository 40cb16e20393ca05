package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowType classifies the direction of a transaction.
type FlowType string

const (
	FlowIncome   FlowType = "income"
	FlowExpense  FlowType = "expense"
	FlowTransfer FlowType = "transfer"
)

var validFlowTypes = map[FlowType]bool{
	FlowIncome:   true,
	FlowExpense:  true,
	FlowTransfer: true,
}

// IsValid checks if the flow type is one of the recognized values.
func (f FlowType) IsValid() bool {
	return validFlowTypes[f]
}

// ItemType tags a transaction as a product or a service. Informational only.
type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
)

// Defaults applied when the model omits optional fields.
const (
	DefaultUnit       = "unit"
	DefaultWalletName = "cash"
)

// TransactionCandidate is one extracted line-item awaiting confirmation.
// Candidates are transient: they live only in the pending store and are
// discarded on confirm, reject, expiry, or a superseding re-parse.
// Price is nil when the model could not determine it; such candidates
// fail validation rather than being committed with a zero value.
type TransactionCandidate struct {
	Date         time.Time        `json:"date"`
	ActivityName string           `json:"activityName"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	FlowType     FlowType         `json:"flowType"`
	ItemType     ItemType         `json:"itemType"`
	Price        *decimal.Decimal `json:"price"`
	WalletName   string           `json:"wallet"`
}

// Validate checks the candidate against the extraction schema rules.
// Each rule produces a distinct reason. index identifies the candidate
// within its batch for error reporting.
func (c *TransactionCandidate) Validate(index int) error {
	if c.ActivityName == "" {
		return &ValidationError{Index: index, Field: "activityName", Reason: "must not be empty"}
	}

	if !c.Quantity.IsPositive() {
		return &ValidationError{Index: index, Field: "quantity", Reason: "must be a positive number"}
	}

	if !c.FlowType.IsValid() {
		return &ValidationError{Index: index, Field: "flowType", Reason: "must be income, expense or transfer"}
	}

	if c.Price == nil {
		return &ValidationError{Index: index, Field: "price", Reason: "is missing, clarify the amount"}
	}

	if c.Price.IsNegative() {
		return &ValidationError{Index: index, Field: "price", Reason: "must not be negative"}
	}

	return nil
}

// Total computes quantity × price with fixed-point arithmetic.
// Candidates without a price total zero; they never reach a commit
// because Validate rejects them first.
func (c *TransactionCandidate) Total() decimal.Decimal {
	if c.Price == nil {
		return decimal.Zero
	}

	return c.Price.Mul(c.Quantity)
}

// ValidateCandidates applies Validate to a whole batch. The first failure
// rejects the batch: partial commits of a half-valid batch are not allowed.
func ValidateCandidates(candidates []TransactionCandidate) error {
	for i := range candidates {
		if err := candidates[i].Validate(i); err != nil {
			return err
		}
	}

	return nil
}

// AccumulateDelta folds a batch of candidates into one signed balance
// delta. Income decreases the delta, expense increases it, transfer is
// neutral. The committer applies new_balance = balance - delta exactly
// once per batch.
func AccumulateDelta(candidates []TransactionCandidate) decimal.Decimal {
	delta := decimal.Zero

	for i := range candidates {
		total := candidates[i].Total()

		switch candidates[i].FlowType {
		case FlowIncome:
			delta = delta.Sub(total)
		case FlowExpense:
			delta = delta.Add(total)
		}
	}

	return delta
}
