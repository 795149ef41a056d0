// Package metrics registers the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Ledger metrics
	TransactionsAppended *prometheus.CounterVec
	AppendErrors         prometheus.Counter
	RetrievalErrors      *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_http_requests_total",
				Help: "Total number of HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TransactionsAppended: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_transactions_appended_total",
				Help: "Total number of transactions appended to the ledger by category",
			},
			[]string{"category"},
		),
		AppendErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_append_errors_total",
			Help: "Total number of failed ledger appends",
		}),
		RetrievalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_retrieval_errors_total",
				Help: "Total number of failed ledger reads by error kind",
			},
			[]string{"kind"},
		),
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}
}
