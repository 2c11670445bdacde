package ports

// Metrics is the counter sink a campaign reports into. Implementations
// must be safe for concurrent use; pkg/observability provides a
// Prometheus-backed one.
type Metrics interface {
	IncRuns()
	IncFailures()
	IncShrinkSteps()
	ObservePropertyDuration(seconds float64)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) IncRuns()                                {}
func (NopMetrics) IncFailures()                            {}
func (NopMetrics) IncShrinkSteps()                         {}
func (NopMetrics) ObservePropertyDuration(seconds float64) {}
