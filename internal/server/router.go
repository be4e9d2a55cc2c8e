package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emergentai/gridhero/internal/handlers"
)

// NewRouter wires the landing page, health check, metrics and the static
// assets found in assets.
func NewRouter(log *slog.Logger, assets fs.FS) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))

	pages := handlers.NewPages(log)
	r.Get("/", pages.LandingPage)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
