// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Engine metrics
	SimulationRunsTotal *prometheus.CounterVec
	SimulationDuration  prometheus.Histogram
	TrialsSimulated     prometheus.Counter

	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "venture_sim_lab"
	}

	return &Metrics{
		SimulationRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "simulation_runs_total",
			Help:      "Total number of simulation runs by status",
		}, []string{"status"}),
		SimulationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "simulation_duration_seconds",
			Help:      "Wall-clock duration of simulation runs",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		TrialsSimulated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "trials_simulated_total",
			Help:      "Total number of Monte Carlo trials simulated",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by path",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		RequestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_errors_total",
			Help:      "Total number of HTTP error responses by path and status code",
		}, []string{"path", "code"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordSimulation records one engine run.
func RecordSimulation(status string, durationSeconds float64, trials int) {
	DefaultMetrics.SimulationRunsTotal.WithLabelValues(status).Inc()
	DefaultMetrics.SimulationDuration.Observe(durationSeconds)
	if trials > 0 {
		DefaultMetrics.TrialsSimulated.Add(float64(trials))
	}
}

// RecordRequest records HTTP request latency.
func RecordRequest(path string, seconds float64) {
	DefaultMetrics.RequestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordRequestError records an HTTP error response.
func RecordRequestError(path, code string) {
	DefaultMetrics.RequestErrors.WithLabelValues(path, code).Inc()
}
