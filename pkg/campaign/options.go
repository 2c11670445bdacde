package campaign

import (
	"log/slog"

	"github.com/aretw0/graft/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger sets a structured logger for campaign progress.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStore persists shrunk failures to (and replays them from) a corpus
// store.
func WithStore(store ports.CorpusStore) Option {
	return func(r *Runner) {
		r.store = store
	}
}

// WithMetrics reports campaign counters into a metrics sink.
func WithMetrics(m ports.Metrics) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithRuns sets the number of property evaluations.
func WithRuns(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.runs = n
		}
	}
}

// WithSeed fixes the rand stream seed, making the campaign reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithShrinkAttempts sets how many shrink-only mutations are proposed
// after a failure.
func WithShrinkAttempts(n int) Option {
	return func(r *Runner) {
		if n >= 0 {
			r.shrinkAttempts = n
		}
	}
}
