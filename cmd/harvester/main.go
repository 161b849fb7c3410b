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

	"clip_harvester/internal/config"
	"clip_harvester/internal/publisher"
	"clip_harvester/internal/relevance"
	"clip_harvester/internal/scheduler"
	"clip_harvester/internal/service"
	"clip_harvester/internal/storage/postgres"
	"clip_harvester/internal/twitch"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	importPath := flag.String("import", "", "import streamers from a JSON file and exit")
	batch := flag.Bool("batch", false, "run a single batch step and exit")
	offset := flag.Int("offset", 0, "streamer offset to resume a batch scan from")
	flag.Parse()

	logger := setupLogger("info")

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

	streamerStore := postgres.NewStreamerStore(db)
	clipStore := postgres.NewClipStore(db)
	runLogStore := postgres.NewRunLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *importPath != "" {
		importer := service.NewImporter(streamerStore, txManager, logger)
		count, err := importer.ImportFile(ctx, *importPath)
		if err != nil {
			logger.Error("import failed", "file", *importPath, "error", err)
			os.Exit(1)
		}
		logger.Info("import finished", "file", *importPath, "streamers", count)
		return
	}

	// The event publisher is optional: without a broker URL the pipeline
	// still collects, it just emits nothing.
	var events service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
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
		events = rabbitMQ
	}

	client := twitch.NewClient(twitch.Config{
		BaseURL:          cfg.Twitch.APIBaseURL,
		AuthURL:          cfg.Twitch.AuthURL,
		ClientID:         cfg.Twitch.ClientID,
		ClientSecret:     cfg.Twitch.ClientSecret,
		Timeout:          cfg.Twitch.Timeout,
		PageDelay:        cfg.Twitch.PageDelay,
		RateLimitBackoff: cfg.Twitch.RateLimitBackoff,
		GameID:           cfg.Twitch.GameID,
	}, nil, logger)

	matcher := relevance.NewMatcher(cfg.Relevance.Keywords)

	scanService := service.NewScanService(
		client,
		streamerStore,
		clipStore,
		runLogStore,
		events,
		matcher,
		logger,
	)

	if *batch {
		result, err := scanService.RunBatch(ctx, *offset,
			cfg.Scan.PageSize, cfg.Scan.LookbackDays, cfg.Scan.MaxPagesPerEntity)
		if err != nil {
			logger.Error("batch step failed", "offset", *offset, "error", err)
			os.Exit(1)
		}
		logger.Info("batch step finished",
			"processed", result.Processed,
			"found", result.Found,
			"accepted", result.Accepted,
			"persisted", result.Persisted,
			"next_offset", result.NextOffset,
			"completed", result.Completed,
			"duration", result.Duration.String(),
		)
		return
	}

	sched := scheduler.NewScheduler(scanService, scheduler.Config{
		Interval:          cfg.Sweep.Interval,
		Size:              cfg.Sweep.Size,
		LookbackDays:      cfg.Sweep.LookbackDays,
		MaxPagesPerEntity: cfg.Sweep.MaxPagesPerEntity,
	}, logger)

	logger.Info("starting clip harvester",
		"interval", cfg.Sweep.Interval,
		"sweep_size", cfg.Sweep.Size,
		"lookback_days", cfg.Sweep.LookbackDays,
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
