// Package observability provides Prometheus instrumentation for campaign
// runs. It implements ports.Metrics so pkg/campaign stays decoupled from
// the metrics backend.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the campaign counters and histograms.
type Metrics struct {
	runs        prometheus.Counter
	failures    prometheus.Counter
	shrinkSteps prometheus.Counter
	propTime    prometheus.Histogram
}

// New creates campaign metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graft_runs_total",
			Help: "Total number of property evaluations.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graft_failures_total",
			Help: "Total number of failing property evaluations.",
		}),
		shrinkSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graft_shrink_steps_total",
			Help: "Total number of accepted shrink steps.",
		}),
		propTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "graft_property_duration_seconds",
			Help:    "Wall time spent inside the property function.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.runs, m.failures, m.shrinkSteps, m.propTime)
	return m
}

func (m *Metrics) IncRuns()        { m.runs.Inc() }
func (m *Metrics) IncFailures()    { m.failures.Inc() }
func (m *Metrics) IncShrinkSteps() { m.shrinkSteps.Inc() }

func (m *Metrics) ObservePropertyDuration(seconds float64) {
	m.propTime.Observe(seconds)
}
