// ABOUTME: Prometheus implementation of the core Metrics interface
// ABOUTME: Counts attempts per outcome and times whole retry cycles on a private registry

package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records request executor activity
type Metrics struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settings_api_attempts_total",
				Help: "Upstream settings API attempts by environment and outcome",
			},
			[]string{"environment", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settings_api_request_duration_seconds",
				Help:    "Duration of a full request cycle including retries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"environment", "success"},
		),
	}

	m.registry.MustRegister(
		m.attempts,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordAttempt counts one attempt
func (m *Metrics) RecordAttempt(environment, outcome string) {
	m.attempts.WithLabelValues(environment, outcome).Inc()
}

// ObserveRequest records a retry cycle duration
func (m *Metrics) ObserveRequest(environment string, success bool, duration time.Duration) {
	m.duration.WithLabelValues(environment, strconv.FormatBool(success)).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
