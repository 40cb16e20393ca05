package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
)

// renderCandidatePreview formats a candidate batch as a per-date text
// table for the confirmation prompt.
func renderCandidatePreview(candidates []domain.TransactionCandidate) string {
	if len(candidates) == 0 {
		return "Tidak ada data transaksi."
	}

	var b strings.Builder

	// Group by calendar date, preserving input order.
	var dates []string
	grouped := make(map[string][]domain.TransactionCandidate)
	for _, c := range candidates {
		key := c.Date.Format("2006-01-02")
		if _, ok := grouped[key]; !ok {
			dates = append(dates, key)
		}
		grouped[key] = append(grouped[key], c)
	}

	for _, date := range dates {
		fmt.Fprintf(&b, "📅 Tanggal %s:\n", date)
		b.WriteString("```text\n")
		fmt.Fprintf(&b, "| %-18s | %6s | %9s | %9s |\n", "Item", "Jumlah", "Harga", "Total")
		fmt.Fprintf(&b, "|%s|%s|%s|%s|\n", strings.Repeat("-", 20), strings.Repeat("-", 8), strings.Repeat("-", 11), strings.Repeat("-", 11))

		for _, c := range grouped[date] {
			label := c.ActivityName
			switch c.FlowType {
			case domain.FlowIncome:
				label = "(in) " + label
			case domain.FlowExpense:
				label = "(out) " + label
			}

			price := decimal.Zero
			if c.Price != nil {
				price = *c.Price
			}

			fmt.Fprintf(&b, "| %-18s | %6s | %9s | %9s |\n", label, c.Quantity.String(), price.String(), c.Total().String())
		}

		b.WriteString("```\n\n")
	}

	return b.String()
}

// renderWalletSummary formats the user's active wallets with a total row.
func renderWalletSummary(wallets []*domain.Wallet) string {
	if len(wallets) == 0 {
		return "Tidak ada data dompet. Buat dulu dengan bilang: tambah wallet cash"
	}

	var b strings.Builder
	b.WriteString("💼 Ringkasan Dompet:\n")
	b.WriteString("```text\n")
	fmt.Fprintf(&b, "| %-15s | %15s |\n", "Nama Dompet", "Saldo")
	fmt.Fprintf(&b, "|%s|%s|\n", strings.Repeat("-", 17), strings.Repeat("-", 17))

	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
		fmt.Fprintf(&b, "| %-15s | %15s |\n", w.Name, w.Balance.StringFixed(2))
	}

	fmt.Fprintf(&b, "|%s|%s|\n", strings.Repeat("-", 17), strings.Repeat("-", 17))
	fmt.Fprintf(&b, "| %-15s | %15s |\n", "TOTAL", total.StringFixed(2))
	b.WriteString("```\n")

	return b.String()
}

// renderReport formats flow-type totals over a date range.
func renderReport(start, end string, totals []domain.FlowTotal) string {
	if len(totals) == 0 {
		return "Tidak ada transaksi pada rentang waktu itu."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Laporan %s s/d %s:\n", start, end)
	b.WriteString("```text\n")
	fmt.Fprintf(&b, "| %-10s | %15s |\n", "Arus", "Total")
	fmt.Fprintf(&b, "|%s|%s|\n", strings.Repeat("-", 12), strings.Repeat("-", 17))

	for _, ft := range totals {
		fmt.Fprintf(&b, "| %-10s | %15s |\n", string(ft.FlowType), ft.Total.StringFixed(2))
	}

	b.WriteString("```\n")

	return b.String()
}
