package usecase

// Button is an abstract inline affordance. The transport adapter decides
// how to render it; the core only produces label/value pairs.
type Button struct {
	Label string
	Value string
}

// Reply is the transport-agnostic outbound message produced by the core.
type Reply struct {
	Body    string
	Buttons []Button
}

// Callback values carried by confirmation buttons.
const (
	CallbackConfirmYes = "confirmed_yes"
	CallbackConfirmNo  = "confirmed_no"
)

// User-facing messages. The bot speaks Indonesian, like its users.
const (
	msgNotRegistered     = `Kamu belum daftar, daftar dulu dengan mengetik "/register"`
	msgServerError       = "Ada kesalahan di server, ulangi lagi"
	msgIntentNotFound    = "Perintah tidak dikenali."
	msgRetryExtraction   = "❌ Aku belum bisa memproses pesan itu, coba tulis ulang ya."
	msgConfirmQuestion   = "Apakah transaksi ini benar?"
	msgSaved             = "✅ Transaksi telah disimpan"
	msgRejected          = "🚫 Transaksi dibatalkan. Silakan prompt ulang"
	msgNothingPending    = "⌛ Tidak ada transaksi yang menunggu konfirmasi. Kirim transaksi baru ya."
	msgSaveFailed        = "❌ Gagal menyimpan transaksi, coba kirim ulang ya."
	msgWalletNotFoundFmt = "❌ Wallet *%s* tidak ditemukan. Buat dulu dengan bilang: tambah wallet %s"
	msgWalletCreatedFmt  = "✅ Wallet *%s* berhasil dibuat dengan saldo *Rp %s*"
	msgWalletDuplicate   = "❌ Wallet dengan nama ini sudah aktif. Tidak bisa membuat baru."
	msgWalletNameEmpty   = "❌ Nama wallet tidak boleh kosong. Sebutkan nama walletnya ya."
	msgTransferDoneFmt   = "✅ Transfer *Rp %s* dari *%s* ke *%s* berhasil"
	msgInvalidBatchFmt   = "❌ Data transaksi belum lengkap (%s). Coba jelaskan lagi ya."
)
