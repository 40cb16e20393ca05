package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "duitbot/internal/adapter/http"
	"duitbot/internal/adapter/llm"
	postgresRepo "duitbot/internal/adapter/repository/postgres"
	redisRepo "duitbot/internal/adapter/repository/redis"
	"duitbot/internal/adapter/telegram"
	"duitbot/internal/infrastructure/config"
	"duitbot/internal/infrastructure/logger"
	"duitbot/internal/infrastructure/metrics"
	"duitbot/internal/infrastructure/postgres"
	"duitbot/internal/infrastructure/redis"
	"duitbot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.DatabaseTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	walletRepo := postgresRepo.NewWalletRepository(pool)
	cashflowRepo := postgresRepo.NewCashflowRepository(pool)
	pendingStore := redisRepo.NewPendingStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	// Model adapter
	llmClient, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, appMetrics)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create model client")
	}
	classifier := llm.NewClassifier(llmClient, log)
	extractor := llm.NewExtractor(llmClient, log)

	// Use cases
	userUC := usecase.NewUserUseCase(userRepo, idGen)
	walletUC := usecase.NewWalletUseCase(txManager, walletRepo, cashflowRepo, idGen, appMetrics)
	reportUC := usecase.NewReportUseCase(cashflowRepo)
	conversationUC := usecase.NewConversationUseCase(
		userRepo, walletRepo, pendingStore, classifier, extractor,
		walletUC, reportUC, cfg.PendingTTL, appMetrics,
	)
	confirmationUC := usecase.NewConfirmationUseCase(
		pendingStore, txManager, walletRepo, cashflowRepo, idGen, retrier, appMetrics,
	)

	// Telegram bot
	handler := telegram.NewHandler(userUC, conversationUC, confirmationUC, log, appMetrics)
	bot, err := telegram.NewBot(cfg.TelegramToken, handler, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to telegram")
	}

	// Ops HTTP server
	opsServer := &http.Server{
		Addr: ":" + cfg.OpsPort,
		Handler: httpAdapter.NewRouter(httpAdapter.RouterConfig{
			Pool:        pool,
			RedisClient: redisClient,
		}),
	}
	go func() {
		log.Info().Str("port", cfg.OpsPort).Msg("starting ops server")
		if err := opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ops server failed")
		}
	}()

	log.Info().Msg("starting bot")
	if err := bot.Run(ctx); err != nil {
		log.Error().Err(err).Msg("bot stopped with error")
	}

	log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("ops server forced to shutdown")
	}

	log.Info().Msg("stopped")
}
