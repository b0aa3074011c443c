package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/voyago-ai/concierge-engine/internal/company"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/pipeline"
	"github.com/voyago-ai/concierge-engine/internal/refresh"
	"github.com/voyago-ai/concierge-engine/internal/session"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "concierge-engine",
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("database", cfg.Mongo.Database).
		Str("session_driver", cfg.Session.Driver).
		Msg("Starting concierge API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	client, err := storage.Connect(connectCtx, cfg.Mongo)
	connectCancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("MongoDB connection failed")
	}
	defer func() {
		if err := storage.Disconnect(context.Background(), client); err != nil {
			logger.Error().Err(err).Msg("MongoDB disconnect failed")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	tourRepo := storage.NewTourRepository(db)
	factRepo := storage.NewFactRepository(db)
	chatLogRepo := storage.NewChatLogRepository(db)

	if inserted, err := storage.EnsureSeedTours(ctx, tourRepo); err != nil {
		logger.Error().Err(err).Msg("Tour seeding failed")
	} else if inserted > 0 {
		logger.Info().Int("tours", inserted).Msg("Tour catalog seeded")
	}

	completer, err := llm.NewClient(cfg.Completion)
	if err != nil {
		logger.Fatal().Err(err).Msg("Completion client setup failed")
	}

	profile := company.DefaultProfile()
	sessions := session.NewStore(cfg.Session)

	service := pipeline.NewService(
		pipeline.NewClassifier(completer, cfg.Completion, logger),
		pipeline.NewRetriever(tourRepo, factRepo, cfg.Retrieval, logger),
		completer,
		chatLogRepo,
		sessions,
		profile,
		cfg.Completion,
		cfg.Retrieval,
		logger,
	)

	if cfg.Refresh.Enabled {
		refresher := refresh.NewRefresher(factRepo, profile, cfg.Refresh, logger)
		refresher.Start(ctx)
	}

	router := NewRouter(logger, cfg, service, tourRepo, factRepo)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
