package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"duitbot/internal/infrastructure/metrics"
	"duitbot/internal/usecase"
)

const welcomeText = `👋 Selamat datang di Bot Pengatur Cashflow!

Bot ini membantu kamu mencatat dan memantau pemasukan, pengeluaran, dan transfer antar dompet. Semua lewat perintah percakapan biasa.

📌 Langkah pertama: buat dompet (wallet)
Contoh:
*buatkan saya wallet cash dengan saldo awal 10000*

✅ Setelah itu, kamu bisa mulai mencatat transaksi.
Contoh:
*hari ini saya membeli nasgor seharga 5000 lewat cash*

💡 Fitur utama:
- Kelola banyak wallet (Cash, Bank, e-Wallet, dll)
- Catat pemasukan dan pengeluaran harian
- Kirim foto struk untuk dicatat otomatis
- Lihat laporan ringkasan per rentang waktu

Ketik /help kapan saja untuk melihat panduan.`

const helpText = `📖 Panduan:

/register - Daftar sebagai pengguna
/help - Tampilkan panduan ini

Contoh perintah percakapan:
- *hari ini jual nasi uduk 20 porsi harga 15 ribu*
- *saldo dompetku berapa?*
- *tambah wallet gopay saldo 50 ribu*
- *pindahkan 25 ribu dari cash ke gopay*
- *laporan pengeluaran minggu ini*

Atau kirim foto struk belanja untuk dicatat otomatis.`

// Handler maps Telegram updates onto the conversation and confirmation
// use cases and renders their replies back into Telegram messages.
type Handler struct {
	api            *tgbotapi.BotAPI
	userUC         *usecase.UserUseCase
	conversationUC *usecase.ConversationUseCase
	confirmationUC *usecase.ConfirmationUseCase
	logger         zerolog.Logger
	metrics        *metrics.Metrics
}

// NewHandler creates a Handler. The bot API is injected by NewBot once
// the connection is authorized.
func NewHandler(
	userUC *usecase.UserUseCase,
	conversationUC *usecase.ConversationUseCase,
	confirmationUC *usecase.ConfirmationUseCase,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *Handler {
	return &Handler{
		userUC:         userUC,
		conversationUC: conversationUC,
		confirmationUC: confirmationUC,
		logger:         logger,
		metrics:        metrics,
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.countUpdate("callback")
		h.handleCallback(ctx, update.CallbackQuery)

	case update.Message == nil:
		// Edits, channel posts and other update kinds are out of scope.

	case update.Message.IsCommand():
		h.countUpdate("command")
		h.handleCommand(ctx, update.Message)

	case len(update.Message.Photo) > 0:
		h.countUpdate("photo")
		h.handlePhoto(ctx, update.Message)

	case update.Message.Text != "":
		h.countUpdate("text")
		h.handleText(ctx, update.Message)
	}
}

func (h *Handler) countUpdate(kind string) {
	if h.metrics != nil {
		h.metrics.MessagesReceived.WithLabelValues(kind).Inc()
	}
}

func (h *Handler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start", "register":
		username := message.From.UserName
		if username == "" {
			username = message.From.FirstName
		}

		_, created, err := h.userUC.Register(ctx, message.From.ID, username)
		if err != nil {
			h.logger.Error().Err(err).Int64("telegram_id", message.From.ID).Msg("registration failed")
			h.send(chatID, usecase.Reply{Body: "Ada kesalahan di server, ulangi lagi"})
			return
		}

		if !created {
			h.send(chatID, usecase.Reply{Body: fmt.Sprintf("👋 Kamu sudah terdaftar, %s! Langsung catat transaksimu.", username)})
			return
		}

		h.send(chatID, usecase.Reply{Body: welcomeText})

	case "help":
		h.send(chatID, usecase.Reply{Body: helpText})

	default:
		h.send(chatID, usecase.Reply{Body: "Perintah tidak dikenali."})
	}
}

func (h *Handler) handleText(ctx context.Context, message *tgbotapi.Message) {
	reply, err := h.conversationUC.HandleText(ctx, message.From.ID, message.Text)
	if err != nil {
		h.logger.Warn().Err(err).Int64("telegram_id", message.From.ID).Msg("text handled with recovered error")
	}

	h.send(message.Chat.ID, reply)
}

func (h *Handler) handlePhoto(ctx context.Context, message *tgbotapi.Message) {
	// The last photo size is the largest.
	photo := message.Photo[len(message.Photo)-1]

	image, err := h.downloadFile(ctx, photo.FileID)
	if err != nil {
		h.logger.Error().Err(err).Int64("telegram_id", message.From.ID).Msg("photo download failed")
		h.send(message.Chat.ID, usecase.Reply{Body: "Foto tidak masuk, tolong ulangi foto lagi"})
		return
	}

	reply, err := h.conversationUC.HandlePhoto(ctx, message.From.ID, image, "image/jpeg")
	if err != nil {
		h.logger.Warn().Err(err).Int64("telegram_id", message.From.ID).Msg("photo handled with recovered error")
	}

	h.send(message.Chat.ID, reply)
}

func (h *Handler) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Ack first so the button spinner stops even if the commit is slow.
	if _, err := h.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		h.logger.Warn().Err(err).Msg("callback ack failed")
	}

	reply, err := h.confirmationUC.HandleConfirmation(ctx, query.From.ID, query.Data)
	if err != nil {
		h.logger.Warn().Err(err).Int64("telegram_id", query.From.ID).Msg("confirmation handled with recovered error")
	}

	if query.Message != nil {
		// Drop the stale buttons from the prompt we are answering.
		edit := tgbotapi.NewEditMessageReplyMarkup(
			query.Message.Chat.ID,
			query.Message.MessageID,
			tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
		)
		if _, err := h.api.Request(edit); err != nil {
			h.logger.Debug().Err(err).Msg("clearing inline keyboard failed")
		}

		h.send(query.Message.Chat.ID, reply)
	}
}

func (h *Handler) send(chatID int64, reply usecase.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Body)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if len(reply.Buttons) > 0 {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(reply.Buttons))
		for _, b := range reply.Buttons {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Value))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(row)
	}

	if _, err := h.api.Send(msg); err != nil {
		// Markdown in model output can be unbalanced; retry as plain text.
		msg.ParseMode = ""
		if _, err := h.api.Send(msg); err != nil {
			h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("send failed")
		}
	}
}

func (h *Handler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := h.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d downloading file", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
