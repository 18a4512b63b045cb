package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dentabot"

// Metrics groups the collectors the bot reports. A nil *Metrics is a no-op.
type Metrics struct {
	routes           *prometheus.CounterVec
	upstreamErrors   *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in production.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		routes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "routes_total",
				Help:      "Replies sent, by routing decision",
			},
			[]string{"route"},
		),
		upstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_errors_total",
				Help:      "Failed calls to external services",
			},
			[]string{"service"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_duration_seconds",
				Help:      "Latency of calls to external services",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service"},
		),
	}
}

// ObserveRoute counts one reply sent along route.
func (m *Metrics) ObserveRoute(route string) {
	if m == nil {
		return
	}
	m.routes.WithLabelValues(route).Inc()
}

// ObserveUpstream records one call to service that started at start.
func (m *Metrics) ObserveUpstream(service string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if err != nil {
		m.upstreamErrors.WithLabelValues(service).Inc()
	}
}
