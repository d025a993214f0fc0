package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/phrazzld/semester/internal/api"
	"github.com/phrazzld/semester/internal/config"
	"github.com/phrazzld/semester/internal/domain/semester"
)

// Application holds the shared application dependencies.
type Application struct {
	config   *config.Config
	logger   *slog.Logger
	calendar semester.Calendar
	router   http.Handler
}

// New creates an Application from configuration. Extra calendar options are
// applied after the logger, so callers may inject a clock or random source.
func New(cfg *config.Config, logger *slog.Logger, opts ...semester.Option) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	params, err := cfg.Calendar.Params()
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar parameters: %w", err)
	}

	calendarOpts := append([]semester.Option{
		semester.WithLogger(logger.With(slog.String("component", "calendar"))),
	}, opts...)
	calendar, err := semester.NewCalendar(params, calendarOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar: %w", err)
	}

	logger.Info("calendar initialized",
		"terms", params.Terms.Terms(),
		"random_min_year", params.MinRandomYear,
		"random_max_year", params.MaxRandomYear)

	return &Application{
		config:   cfg,
		logger:   logger,
		calendar: calendar,
		router:   api.NewRouter(api.NewSemesterHandler(calendar, logger), logger),
	}, nil
}

// Calendar returns the application's calendar.
func (a *Application) Calendar() semester.Calendar {
	return a.calendar
}

// Router returns the HTTP handler serving the API.
func (a *Application) Router() http.Handler {
	return a.router
}

// Run listens on the configured port and serves until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", a.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.config.Server.Port, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves the API on ln until ctx is cancelled, then shuts the server
// down gracefully within the configured timeout.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			a.logger.Error("Server failed", "error", err)
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("Shutting down server...")
	}

	timeout := time.Duration(a.config.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.logger.Info("Server shutdown completed")
	return nil
}
