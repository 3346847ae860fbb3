// Package metrics exposes Prometheus collectors for the crawler daemon.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values for page and article counters.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

var (
	requestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newswatch_requests_total",
			Help: "Total number of outbound HTTP requests issued by workers.",
		},
	)

	pagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newswatch_pages_total",
			Help: "Total number of listing pages processed, labeled by status.",
		},
		[]string{"status"},
	)

	articlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newswatch_articles_total",
			Help: "Total number of articles processed, labeled by status.",
		},
		[]string{"status"},
	)

	cycleDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newswatch_cycle_duration_seconds",
			Help:    "Histogram of full crawl cycle durations.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	activeWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newswatch_active_workers",
			Help: "Number of workers currently crawling a page range.",
		},
	)
)

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest increments the outbound request counter.
func ObserveRequest() {
	requestsTotal.Inc()
}

// ObservePage increments the page counter for the given status.
func ObservePage(status string) {
	pagesTotal.WithLabelValues(status).Inc()
}

// ObserveArticle increments the article counter for the given status.
func ObserveArticle(status string) {
	articlesTotal.WithLabelValues(status).Inc()
}

// ObserveCycle records the duration of one crawl cycle.
func ObserveCycle(duration time.Duration) {
	cycleDurationSeconds.Observe(duration.Seconds())
}

// IncActiveWorkers increments the active workers gauge.
func IncActiveWorkers() {
	activeWorkers.Inc()
}

// DecActiveWorkers decrements the active workers gauge.
func DecActiveWorkers() {
	activeWorkers.Dec()
}
