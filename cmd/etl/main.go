package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/cloud-top-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/cloud-top-etl/internal/adapter/kafka"
	"github.com/couchcryptid/cloud-top-etl/internal/adapter/sqlite"
	"github.com/couchcryptid/cloud-top-etl/internal/config"
	"github.com/couchcryptid/cloud-top-etl/internal/domain"
	"github.com/couchcryptid/cloud-top-etl/internal/observability"
	"github.com/couchcryptid/cloud-top-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	model, err := domain.TierByName(cfg.AdiabatTier)
	if err != nil {
		logger.Error("failed to resolve adiabat tier", "error", err)
		os.Exit(1)
	}
	logger.Info("adiabat model resolved", "tier", model.Name(), "degree", model.Degree())

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(model, metrics, logger)

	// Archive is feature-flagged via STORE_PATH.
	var loader pipeline.BatchLoader = writer
	var store *sqlite.Store
	if cfg.StorePath != "" {
		store, err = sqlite.NewStore(cfg.StorePath, logger)
		if err != nil {
			logger.Error("failed to open estimate archive", "error", err, "path", cfg.StorePath)
			os.Exit(1)
		}
		loader = pipeline.NewTeeLoader(writer, store, logger)
		metrics.ArchiveEnabled.Set(1)
		logger.Info("estimate archive enabled", "path", cfg.StorePath)
	} else {
		logger.Info("estimate archive disabled")
	}

	p := pipeline.New(reader, transformer, loader, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, model, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("estimate archive close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
