package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the classified purpose of a user message. The wire values
// match what the classifier prompt instructs the model to emit.
type Intent string

const (
	IntentRecordTransaction Intent = "CATAT_TRANSAKSI"
	IntentQueryBalance      Intent = "TANYA_WALLET"
	IntentRequestReport     Intent = "MINTA_LAPORAN"
	IntentAddWallet         Intent = "TAMBAH_WALLET"
	IntentTransferWallet    Intent = "PINDAH_WALLET"
	IntentOther             Intent = "LAINNYA"
)

// IntentResult is a closed set of per-intent payloads. Downstream code
// switches on the concrete variant instead of probing a loose map.
type IntentResult interface {
	Intent() Intent
}

// RecordTransactionIntent signals the message describes transactions.
// The candidates themselves come from the stricter extraction pass.
type RecordTransactionIntent struct{}

func (RecordTransactionIntent) Intent() Intent { return IntentRecordTransaction }

// QueryBalanceIntent asks for the user's wallet balances.
type QueryBalanceIntent struct{}

func (QueryBalanceIntent) Intent() Intent { return IntentQueryBalance }

// RequestReportIntent asks for an aggregate over a date range.
type RequestReportIntent struct {
	Start     time.Time
	End       time.Time
	FlowTypes []FlowType
	Wallet    string
}

func (RequestReportIntent) Intent() Intent { return IntentRequestReport }

// AddWalletIntent asks to create a wallet.
type AddWalletIntent struct {
	Name           string
	InitialBalance decimal.Decimal
}

func (AddWalletIntent) Intent() Intent { return IntentAddWallet }

// TransferWalletIntent asks to move a balance between two wallets.
type TransferWalletIntent struct {
	SourceWallet string
	TargetWallet string
	Amount       decimal.Decimal
	Fee          decimal.Decimal
}

func (TransferWalletIntent) Intent() Intent { return IntentTransferWallet }

// OtherIntent carries the model's conversational answer for messages
// that match no recognized intent.
type OtherIntent struct {
	Reply string
}

func (OtherIntent) Intent() Intent { return IntentOther }
