package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	// HTTPRequestsTotal counts requests by method, route pattern and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// EventMutationsTotal counts aggregate operations by operation and result (ok, rejected, error).
	EventMutationsTotal *prometheus.CounterVec

	// StatsCacheTotal counts stats cache lookups by result (hit, stale, miss, error).
	StatsCacheTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with the default registerer.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates the collectors and registers them with reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		EventMutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_mutations_total",
				Help: "Total number of event aggregate operations",
			},
			[]string{"operation", "result"},
		),
		StatsCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_stats_cache_total",
				Help: "Event stats cache lookups",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.EventMutationsTotal,
		m.StatsCacheTotal,
	)
	return m
}

// RecordMutation is nil-safe so callers may run without metrics.
func (m *Metrics) RecordMutation(operation, result string) {
	if m == nil {
		return
	}
	m.EventMutationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordStatsCache is nil-safe so callers may run without metrics.
func (m *Metrics) RecordStatsCache(result string) {
	if m == nil {
		return
	}
	m.StatsCacheTotal.WithLabelValues(result).Inc()
}
