package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/feature-votes/cliparse"
	"github.com/danielhkuo/feature-votes/db"
	"github.com/danielhkuo/feature-votes/metrics"
	"github.com/danielhkuo/feature-votes/middleware"
	"github.com/danielhkuo/feature-votes/router"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup, including closing the
// store, runs before main exits.
func run() int {
	// Parse configuration
	if err := cliparse.LoadEnvFile(); err != nil {
		slog.Error("Error loading .env", "error", err)
		return 1
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	// Connect to the store and create indexes or tables
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	store, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()
	slog.Info("Database ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(store, metrics.New())

	// Create server
	server := &http.Server{
		Handler:           middleware.CORS(cfg.FrontendURL)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("failed to listen", "error", err, "port", cfg.Port)
		return 1
	}

	// Wait for Ctrl-C or SIGTERM
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Listening", "port", cfg.Port, "frontend_url", cfg.FrontendURL)
	if err := serve(sigCtx, server, ln); err != nil {
		slog.Error("Server closed", "error", err)
		return 1
	}
	slog.Info("Server closed")
	return 0
}

// serve runs server on ln until ctx is done, then shuts it down and waits for
// in-flight requests to finish or shutdownTimeout to pass.
func serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	idleConnsClosed := make(chan struct{})
	go func() {
		defer close(idleConnsClosed)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-idleConnsClosed
	return nil
}
