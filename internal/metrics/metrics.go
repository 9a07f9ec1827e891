package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Dashboard
	Recalculations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recalculations_total",
			Help: "Total dashboard recalculations",
		},
	)

	// Exchange rate
	RateResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rate_resolutions_total",
			Help: "Exchange rate lookups by resolved source",
		},
		[]string{"source"}, // live|cached|fallback
	)
	RateFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exchange_rate_fetch_failures_total",
			Help: "Total failed live exchange rate fetches",
		},
	)

	// Storage
	PersistenceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_errors_total",
			Help: "Record store failures by operation",
		},
		[]string{"op"},
	)

	// Worker queue
	WorkerQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler
