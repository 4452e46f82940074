package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"chat_syncer/internal/config"
	"chat_syncer/internal/notify"
	"chat_syncer/internal/scheduler"
	"chat_syncer/internal/service"
	"chat_syncer/internal/source/discord"
	"chat_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	accountID := flag.String("account", "", "sync a single account and exit")
	fullSync := flag.Bool("full-sync", false, "ignore stored cursors and re-fetch full history (single-account mode)")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ status event publisher
	rabbitMQ, err := notify.NewRabbitMQ(notify.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	accountStore := postgres.NewAccountStore(db)
	channelStore := postgres.NewChannelStore(db)
	threadStore := postgres.NewThreadStore(db)
	authorStore := postgres.NewAuthorStore(db)
	messageStore := postgres.NewMessageStore(db)
	txManager := postgres.NewTransactionManager(db)

	notifier := notify.NewNotifier(accountStore, rabbitMQ)

	// Initialize chat API client
	client := discord.New(discord.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		client,
		accountStore,
		channelStore,
		threadStore,
		authorStore,
		messageStore,
		txManager,
		notifier,
		logger,
		cfg.Sync,
		cfg.API.Token,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *accountID != "" {
		logger.Info("starting one-shot sync", "account_id", *accountID, "full_sync", *fullSync)
		if _, err := syncService.Sync(ctx, *accountID, *fullSync); err != nil {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(syncService, accountStore, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	logger.Info("starting chat syncer",
		"interval", cfg.Sync.Interval,
		"run_timeout", cfg.Sync.RunTimeout,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
