// Package lifecycle runs a service with signal handling plus a health and
// metrics HTTP endpoint.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/civicworks/infrapulse/pkg/logger"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Service is the minimal lifecycle contract run by RunServer.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ServerOptions configures RunServer.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Service     Service
	Logger      logger.Logger
}

// RunServer starts the service and an HTTP server exposing /healthz and
// /metrics, then blocks until SIGINT/SIGTERM or context cancellation.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := opts.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	if err := opts.Service.Start(ctx); err != nil {
		return fmt.Errorf("failed to start %s: %w", opts.ServiceName, err)
	}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	httpErr := make(chan error, 1)

	go func() {
		log.Info().
			Str("listen_addr", opts.ListenAddr).
			Str("service", opts.ServiceName).
			Msg("HTTP server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErr <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		log.Info().Str("service", opts.ServiceName).Msg("Shutdown signal received")
	case err := <-httpErr:
		runErr = fmt.Errorf("http server failed: %w", err)
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown failed")
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Str("service", opts.ServiceName).Msg("Service stop failed")

		if runErr == nil {
			runErr = err
		}
	}

	return runErr
}
