package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "pollsapp/internal/adapter/http"
	"pollsapp/internal/adapter/telemetry"
	. "pollsapp/pkg/config"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := Load(".env")
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := NewLokiLogger(config.ServiceName, config.LokiURL)
	if err != nil {
		log.Fatal("Failed to initialize Loki logger:", err)
	}

	defer logger.Sync()

	tel, err := telemetry.NewContainer(ctx, telemetry.Config{
		ServiceName:    config.ServiceName,
		ServiceVersion: config.ServiceVersion,
		Environment:    config.Environment,
		MetricsPort:    config.MetricsPort,
		OTLPEndpoint:   config.OTLPEndpoint,
	}, logger.Logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	tel.AppMetrics.StartSystemMetrics(ctx, 15*time.Second)

	server, err := apphttp.NewServer(ctx, config, tel.AppMetrics, logger, tel.NewTelemetryProbe(logger.Logger))
	if err != nil {
		logger.Logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		if err != nil {
			logger.Logger.Error("Server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server shutdown failed", zap.Error(err))
	}

	if err := tel.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Telemetry shutdown failed", zap.Error(err))
	}
}
