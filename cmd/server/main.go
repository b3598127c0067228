package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/marketbrief/marketbrief/internal/api"
	"github.com/marketbrief/marketbrief/internal/config"
	"github.com/marketbrief/marketbrief/internal/generator"
	"github.com/marketbrief/marketbrief/internal/logging"
	"github.com/marketbrief/marketbrief/internal/metrics"
	"github.com/marketbrief/marketbrief/internal/server"
)

func main() {
	// Local dev convenience; production relies on the real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to init logger", "error", err)
		os.Exit(1)
	}

	logger.Info("starting marketbrief",
		"model_path_enabled", cfg.DeepSeek.Enabled(),
		"model", cfg.DeepSeek.Model)

	collector, err := metrics.NewCollector()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	briefGenerator := generator.New(cfg.DeepSeek, logger)
	handler := api.NewHandler(briefGenerator, collector, logger)

	mux := http.NewServeMux()
	api.SetupRoutes(mux, handler, collector)

	srv := server.New(cfg.Server, logger, collector.InstrumentHandler(api.RequestID(mux)))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("received shutdown signal", "signal", sig.String())
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("marketbrief stopped")
}
