// Package main implements the entry point for the semester API server,
// which converts, shifts and derives academic semesters over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/semester/internal/config"
	"github.com/phrazzld/semester/internal/platform/logger"
	"github.com/phrazzld/semester/internal/server"
)

// main is the entry point for the semester server. It stops on SIGINT or
// SIGTERM after draining in-flight requests.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run loads configuration, sets up logging and serves until ctx is done.
func run(ctx context.Context) error {
	app, err := initializeApp()
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*server.Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("configured_terms", len(cfg.Calendar.Terms)))

	app, err := server.New(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, nil
}
