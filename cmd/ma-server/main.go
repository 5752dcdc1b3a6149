package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tvmai/merchant-admin/internal/config"
	"github.com/tvmai/merchant-admin/internal/gateway"
	"github.com/tvmai/merchant-admin/internal/http"
	"github.com/tvmai/merchant-admin/internal/log"
	"github.com/tvmai/merchant-admin/internal/review"
	"github.com/tvmai/merchant-admin/internal/service"
	"github.com/tvmai/merchant-admin/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running merchant admin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Shopify config.Shopify
		Catalog config.Catalog
		Otel    config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	provider := gateway.NewStaticTokenProvider(cfg.Shopify)
	journal := review.NewJournal(logger)

	catalogService, err := service.NewCatalogService(provider, journal, logger, cfg.Catalog, cfg.Shopify)
	if err != nil {
		return fmt.Errorf("error creating catalog service: %w", err)
	}

	svc, err := http.New(cfg.HTTP, logger, catalogService, journal)
	if err != nil {
		return fmt.Errorf("error creating http service: %w", err)
	}

	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, syscall.SIGINT, syscall.SIGTERM)
	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")
	return nil
}
