package llm

import (
	"errors"
	"testing"

	"duitbot/internal/domain"
)

func TestParseIntentEnvelopeRecordTransaction(t *testing.T) {
	result, err := parseIntentEnvelope(`{"intent": "CATAT_TRANSAKSI", "content": ""}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(domain.RecordTransactionIntent); !ok {
		t.Errorf("expected RecordTransactionIntent, got %T", result)
	}
}

func TestParseIntentEnvelopeFenced(t *testing.T) {
	raw := "```json\n{\"intent\": \"TANYA_WALLET\", \"content\": \"\"}\n```"

	result, err := parseIntentEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(domain.QueryBalanceIntent); !ok {
		t.Errorf("expected QueryBalanceIntent, got %T", result)
	}
}

func TestParseIntentEnvelopeAddWallet(t *testing.T) {
	raw := `{"intent": "TAMBAH_WALLET", "content": {"name": "Gopay", "initialBalance": 50000}}`

	result, err := parseIntentEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	add, ok := result.(domain.AddWalletIntent)
	if !ok {
		t.Fatalf("expected AddWalletIntent, got %T", result)
	}
	if add.Name != "Gopay" {
		t.Errorf("unexpected name %q", add.Name)
	}
	if add.InitialBalance.String() != "50000" {
		t.Errorf("unexpected balance %s", add.InitialBalance)
	}
}

func TestParseIntentEnvelopeTransfer(t *testing.T) {
	raw := `{"intent": "PINDAH_WALLET", "content": {"sourceWallet": "cash", "targetWallet": "gopay", "nominal": 25000, "fee": 1000}}`

	result, err := parseIntentEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr, ok := result.(domain.TransferWalletIntent)
	if !ok {
		t.Fatalf("expected TransferWalletIntent, got %T", result)
	}
	if tr.SourceWallet != "cash" || tr.TargetWallet != "gopay" {
		t.Errorf("unexpected wallets: %+v", tr)
	}
	if tr.Amount.String() != "25000" || tr.Fee.String() != "1000" {
		t.Errorf("unexpected amounts: %+v", tr)
	}
}

func TestParseIntentEnvelopeReport(t *testing.T) {
	raw := `{"intent": "MINTA_LAPORAN", "content": {"dateRange": {"start": "2025-07-01 00:00:00", "end": "2025-07-22 00:00:00"}, "flowType": ["income", "bogus"], "wallet": "cash"}}`

	result, err := parseIntentEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rep, ok := result.(domain.RequestReportIntent)
	if !ok {
		t.Fatalf("expected RequestReportIntent, got %T", result)
	}
	if rep.Start.Format("2006-01-02") != "2025-07-01" || rep.End.Format("2006-01-02") != "2025-07-22" {
		t.Errorf("unexpected range: %s .. %s", rep.Start, rep.End)
	}
	// Unrecognized flow types are dropped, not propagated.
	if len(rep.FlowTypes) != 1 || rep.FlowTypes[0] != domain.FlowIncome {
		t.Errorf("unexpected flow types: %v", rep.FlowTypes)
	}
	if rep.Wallet != "cash" {
		t.Errorf("unexpected wallet %q", rep.Wallet)
	}
}

func TestParseIntentEnvelopeOther(t *testing.T) {
	raw := `{"intent": "LAINNYA", "content": "Halo! Aku asisten cashflow."}`

	result, err := parseIntentEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other, ok := result.(domain.OtherIntent)
	if !ok {
		t.Fatalf("expected OtherIntent, got %T", result)
	}
	if other.Reply != "Halo! Aku asisten cashflow." {
		t.Errorf("unexpected reply %q", other.Reply)
	}
}

func TestParseIntentEnvelopeUnknownIntentDegrades(t *testing.T) {
	result, err := parseIntentEnvelope(`{"intent": "HAPUS_SEMUA", "content": ""}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(domain.OtherIntent); !ok {
		t.Errorf("expected OtherIntent fallback, got %T", result)
	}
}

func TestParseIntentEnvelopeMalformed(t *testing.T) {
	_, err := parseIntentEnvelope(`not json at all`)
	if !errors.Is(err, domain.ErrMalformedModelOutput) {
		t.Fatalf("expected malformed output error, got %v", err)
	}
}
