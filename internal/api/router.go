// Package api provides HTTP router setup.
package api

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tshehlatshego/checkmate/internal/check"
	"github.com/tshehlatshego/checkmate/internal/config"
	"github.com/tshehlatshego/checkmate/internal/database"
)

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg *config.Config, engine *check.Engine, store database.Store, staticFS embed.FS) http.Handler {
	r := chi.NewRouter()

	handler := NewHandler(engine, store)

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.RateLimits.RequestsPerMinute))

	// Legacy top-level endpoint, kept stable for existing callers
	r.Get("/fact-check", handler.FactCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/fact-check", handler.FactCheck)
		r.Get("/checks", handler.ListChecks)
		r.Get("/checks/{id}", handler.GetCheck)
	})

	// Serve static frontend if enabled
	if cfg.Server.EnableUI {
		staticContent, err := fs.Sub(staticFS, "static")
		if err == nil {
			fileServer := http.FileServer(http.FS(staticContent))
			r.Handle("/*", fileServer)
		}
	}

	return r
}
