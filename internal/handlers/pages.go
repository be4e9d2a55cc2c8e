package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/emergentai/gridhero/internal/components"
	"github.com/emergentai/gridhero/internal/logger"
	"github.com/emergentai/gridhero/internal/metrics"
)

type Pages struct {
	log *slog.Logger
}

func NewPages(log *slog.Logger) *Pages {
	return &Pages{log: log.With(logger.Scope("handlers"))}
}

func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page := components.Layout(
		components.PageConfig{
			Title:       "Welcome to Our Website",
			Description: "Discover amazing things with us.",
		},
		components.HeroSection(),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := page.Render(w)
	metrics.ObserveRender("landing", start, err)
	if err != nil {
		p.log.Error("render landing page", logger.Error(err), slog.String("path", r.URL.Path))
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
