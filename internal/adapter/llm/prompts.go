package llm

import (
	"strings"
	"time"
)

// wireTimeLayout is the timestamp format the prompts instruct the model
// to emit.
const wireTimeLayout = "2006-01-02 15:04:05"

const classifyInstruction = `Kamu adalah asisten AI untuk bot cashflow. Tugasmu:

Klasifikasikan pesan pengguna ke salah satu intent berikut:
- CATAT_TRANSAKSI
- TANYA_WALLET
- MINTA_LAPORAN
- TAMBAH_WALLET
- PINDAH_WALLET
- LAINNYA

Balas HANYA dengan JSON valid, tanpa teks lain dan tanpa code fence.

Jika CATAT_TRANSAKSI (pesan berisi transaksi untuk dicatat):
{"intent": "CATAT_TRANSAKSI", "content": ""}

Jika TANYA_WALLET (user menanyakan saldo dompet):
{"intent": "TANYA_WALLET", "content": ""}

Jika TAMBAH_WALLET:
{"intent": "TAMBAH_WALLET", "content": {"name": "", "initialBalance": 0}}
name = nama wallet seperti Gopay, Dana, Bank BRI, Cash.
initialBalance = 0 jika user tidak menyebutkan nominal.

Jika PINDAH_WALLET:
{"intent": "PINDAH_WALLET", "content": {"sourceWallet": "", "targetWallet": "", "nominal": 0, "fee": 0}}

Jika MINTA_LAPORAN, dan waktu tidak disebut, gunakan start = {d} dikurangi 7 hari, end = {d}:
{"intent": "MINTA_LAPORAN", "content": {"dateRange": {"start": "2025-07-01 00:00:00", "end": "2025-07-22 00:00:00"}, "flowType": [], "wallet": null}}
flowType berisi pilihan dari income, expense, transfer, atau [] untuk semua.
wallet = null berarti semua wallet.

Jika kamu tidak yakin intent-nya, gunakan:
{"intent": "LAINNYA", "content": "(jawab secara normal, tapi ingat kamu asisten pencatat cashflow)"}

Hari ini = {d}.
`

const extractInstruction = `Kamu adalah parser transaksi untuk bot cashflow.
Pecah pesan pengguna menjadi daftar transaksi. Jika terdapat beberapa
transaksi dalam satu kalimat, pecah menjadi beberapa item.

Balas HANYA dengan JSON array valid, dimulai dengan "[" dan diakhiri "]".
Tanpa code fence, tanpa teks lain.

[
  {
    "date": "2025-07-14 14:20:21",
    "activityName": "nasi uduk",
    "quantity": 20,
    "unit": "porsi",
    "flowType": "income",
    "itemType": "product",
    "price": 15000,
    "wallet": "cash"
  }
]

Aturan:
- date: kenali "hari ini", "kemarin", dst. Hari ini = {d}.
- activityName: misal nasi goreng, ngegojek, gaji.
- unit: misal porsi, kg, layanan.
- flowType: income, expense, atau transfer.
- itemType: product atau service.
- price: angka, null jika tidak disebut.
- wallet: misal gopay, bank bri, dana. Default: cash.
`

const receiptInstruction = `Parse transaksi dari foto struk belanja ini.
Jika terdapat beberapa item, keluarkan satu objek per item.

Balas HANYA dengan JSON array valid seperti contoh, dimulai dengan "["
dan diakhiri "]". Tanpa code fence, tanpa teks lain.

[
  {
    "date": "2025-07-14 14:20:21",
    "activityName": "nasi uduk",
    "quantity": 20,
    "unit": "porsi",
    "flowType": "expense",
    "itemType": "product",
    "price": 15000,
    "wallet": "cash"
  }
]

Tanggal struk tidak terbaca berarti date = {d}. Wallet default: cash.
`

// renderPrompt substitutes the {d} date placeholder.
func renderPrompt(instruction string, asOf time.Time) string {
	return strings.ReplaceAll(instruction, "{d}", asOf.Format(wireTimeLayout))
}
