// Package metrics counts dashboard interactions for the session. There is
// no listener: counters are dumped in Prometheus text format on exit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "paynex"

// Metrics holds the session counters and their private registry.
type Metrics struct {
	registry *prometheus.Registry

	navigations        *prometheus.CounterVec
	exports            *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	submissions        prometheus.Counter
	payments           *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "router",
				Name:      "navigations_total",
				Help:      "Page navigations by target page",
			},
			[]string{"page"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "table",
				Name:      "exports_total",
				Help:      "Table exports by feature and format",
			},
			[]string{"feature", "format"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "validation_failures_total",
				Help:      "Blocked wizard transitions by step",
			},
			[]string{"step"},
		),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Accepted onboarding submissions",
		}),
		payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payment",
				Name:      "proceeds_total",
				Help:      "Payment proceeds by channel code",
			},
			[]string{"channel"},
		),
	}
	m.registry.MustRegister(m.navigations, m.exports, m.validationFailures, m.submissions, m.payments)
	return m
}

// Nil-receiver safe so callers can run without metrics.

func (m *Metrics) Navigated(page string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(page).Inc()
}

func (m *Metrics) Exported(feature, format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(feature, format).Inc()
}

func (m *Metrics) ValidationFailed(step string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(step).Inc()
}

func (m *Metrics) Submitted() {
	if m == nil {
		return
	}
	m.submissions.Inc()
}

func (m *Metrics) Proceeded(channel string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(channel).Inc()
}

// Registry exposes the gatherer for tests and the textfile writer.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps every counter to path. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
