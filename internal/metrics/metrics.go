package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_page_renders_total",
		Help: "Pages rendered, by page and outcome",
	}, []string{"page", "outcome"})

	PageRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_page_render_duration_seconds",
		Help:    "Time spent rendering a page into the response",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"page"})
)

// ObserveRender records one render of page that started at start.
func ObserveRender(page string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	PageRenders.WithLabelValues(page, outcome).Inc()
	PageRenderDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())
}
