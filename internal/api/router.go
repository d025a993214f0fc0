package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/semester/internal/api/middleware"
)

// NewRouter creates the application router with all routes and middleware.
func NewRouter(handler *SemesterHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/validate", handler.Validate)

		r.Route("/semesters", func(r chi.Router) {
			r.Get("/current", handler.Current)
			r.Get("/next", handler.Next)
			r.Get("/previous", handler.Previous)
			r.Get("/random", handler.Random)
			r.Get("/{value}", handler.Get)
			r.Post("/{value}/shift", handler.Shift)
		})
	})

	r.Get("/health", handler.Health)

	return r
}
