package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Bot runs the long-polling update loop and dispatches each update to
// the handler on its own goroutine, so one slow model call never blocks
// other users.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	logger  zerolog.Logger
}

// NewBot creates a Bot for the given token.
func NewBot(token string, handler *Handler, logger zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	handler.api = api

	return &Bot{
		api:     api,
		handler: handler,
		logger:  logger,
	}, nil
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info().Str("username", b.api.Self.UserName).Msg("bot authorized, polling for updates")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()

		case update, ok := <-updates:
			if !ok {
				return nil
			}

			go b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	b.handler.HandleUpdate(ctx, update)
}
