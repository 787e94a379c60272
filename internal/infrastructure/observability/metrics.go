package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments the API layer records into.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	FeasibilityChecks *prometheus.CounterVec
}

// InitMetrics registers the application metrics on the default registry.
func InitMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chargepilot_http_requests_total",
			Help: "HTTP requests by method, path pattern and status code.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chargepilot_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		FeasibilityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chargepilot_feasibility_checks_total",
			Help: "Feasibility checks by verdict and prediction method.",
		}, []string{"verdict", "method"}),
	}
}

// RecordFeasibility counts one completed feasibility check.
func (m *Metrics) RecordFeasibility(reachable bool, predictionMethod string) {
	if m == nil {
		return
	}
	verdict := "unreachable"
	if reachable {
		verdict = "reachable"
	}
	m.FeasibilityChecks.WithLabelValues(verdict, predictionMethod).Inc()
}
