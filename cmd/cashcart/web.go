package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashcart/internal/catalog"
	"cashcart/internal/config"
	"cashcart/internal/images"
	"cashcart/internal/telemetry"
	"cashcart/internal/validate"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func runServer(cfg *config.Config, addr string) error {
	shutdownTelemetry, err := telemetry.Init(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	mux := http.NewServeMux()
	catalog.NewHandler().Register(mux)
	validate.NewHandler().Register(mux)
	images.NewHandler().Register(mux)

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.ErrorContext(r.Context(), "failed to write ready response", "error", err)
		}
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Serving cashcart", "address", addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return gracefulShutdown(server, shutdownTelemetry)
	}
}

func gracefulShutdown(svr *http.Server, shutdownTelemetry func(context.Context) error) error {
	// Give outstanding requests 25 seconds (kubernetes grants 30).
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		if closeErr := svr.Close(); closeErr != nil {
			slog.Error("Server close error", "error", closeErr)
		}
		return err
	}

	if err := shutdownTelemetry(ctx); err != nil {
		slog.Error("Telemetry shutdown error", "error", err)
		return err
	}
	return nil
}
