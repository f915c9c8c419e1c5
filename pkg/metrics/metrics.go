// Package metrics exposes Prometheus instrumentation for upstream API calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream bundles metrics for N2YO request attempts. A nil *Upstream is
// valid and records nothing, so instrumentation stays optional.
type Upstream struct {
	RequestsTotal    *prometheus.CounterVec
	RateLimitedTotal *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// NewUpstream constructs upstream metrics and registers them with reg.
func NewUpstream(reg prometheus.Registerer) *Upstream {
	m := &Upstream{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skytrack_upstream_requests_total",
				Help: "Upstream request attempts by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		RateLimitedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skytrack_upstream_rate_limited_total",
				Help: "Upstream attempts rejected with HTTP 429 by endpoint",
			},
			[]string{"endpoint"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skytrack_upstream_request_duration_seconds",
				Help:    "Upstream request attempt duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
	reg.MustRegister(m.RequestsTotal, m.RateLimitedTotal, m.RequestDuration)
	return m
}

// ObserveRequest records one completed request attempt.
func (m *Upstream) ObserveRequest(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// IncRateLimited records one 429 rejection.
func (m *Upstream) IncRateLimited(endpoint string) {
	if m == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(endpoint).Inc()
}
