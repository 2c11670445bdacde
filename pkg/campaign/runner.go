package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/corpus"
	"github.com/aretw0/graft/pkg/ports"
)

// Property is the predicate under test. A nil error means the value
// passes; a non-nil error marks it as failure-inducing.
type Property func(value any) error

// Runner drives one domain against one property. Not safe for concurrent
// use; run independent Runners on independent rand seeds instead.
type Runner struct {
	domain  graft.Domain
	prop    Property
	logger  *slog.Logger
	store   ports.CorpusStore
	metrics ports.Metrics

	runs           int
	seed           uint64
	shrinkAttempts int
}

// Report summarizes a finished campaign.
type Report struct {
	// Runs is the number of property evaluations performed.
	Runs int
	// Failure is nil when every evaluation passed.
	Failure *Failure
}

// Failure describes a (shrunk) failure-inducing input.
type Failure struct {
	// Value is the minimal failing value found.
	Value any
	// Err is the property error for Value.
	Err error
	// Tree is the serialized corpus record for Value, ready to replay.
	Tree *corpus.Node
	// Key is the corpus store key the tree was saved under, if a store is
	// configured.
	Key string
	// Pretty is the domain printer's rendering of the failing input.
	Pretty string
}

// New creates a runner with defaults: 1000 runs, 500 shrink attempts,
// no store, no metrics, no logging.
func New(domain graft.Domain, prop Property, opts ...Option) *Runner {
	r := &Runner{
		domain:         domain,
		prop:           prop,
		logger:         logging.NewNop(),
		metrics:        ports.NopMetrics{},
		runs:           1000,
		seed:           1,
		shrinkAttempts: 500,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the campaign. A found failure is reported, not returned as
// an error; the error return covers campaign-level problems (cancellation,
// store I/O).
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rng := rand.New(rand.NewPCG(r.seed, 0xa0761d6478bd642f))

	c := r.domain.Init(rng)
	for i := 0; i < r.runs; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		value := r.domain.Value(c)
		start := time.Now()
		err := r.prop(value)
		r.metrics.ObservePropertyDuration(time.Since(start).Seconds())
		r.metrics.IncRuns()

		if err != nil {
			r.metrics.IncFailures()
			r.logger.Info("property failed, shrinking",
				"run", i+1, "err", err, "attempts", r.shrinkAttempts)
			failure, serr := r.handleFailure(ctx, c, rng)
			if serr != nil {
				return nil, serr
			}
			return &Report{Runs: i + 1, Failure: failure}, nil
		}

		r.domain.Mutate(c, rng, false)
		if verr := r.domain.ValidateCorpusValue(c); verr != nil {
			// Absence is recoverable at this layer: discard the corrupt
			// value and restart from a fresh one.
			r.logger.Warn("discarding invalid corpus value", "err", verr)
			c = r.domain.Init(rng)
		}
	}

	r.logger.Info("campaign passed", "runs", r.runs)
	return &Report{Runs: r.runs}, nil
}

// handleFailure shrinks the failing corpus value and persists the result.
func (r *Runner) handleFailure(ctx context.Context, c graft.CorpusValue, rng *rand.Rand) (*Failure, error) {
	c = r.shrink(c, rng)

	value := r.domain.Value(c)
	failure := &Failure{
		Value:  value,
		Err:    r.prop(value),
		Tree:   r.domain.SerializeCorpus(c),
		Pretty: r.domain.Printer().Format(c),
	}

	if r.store != nil {
		key := fmt.Sprintf("failure-%d", time.Now().UnixNano())
		if err := r.store.Save(ctx, key, failure.Tree); err != nil {
			return nil, fmt.Errorf("failed to persist failing corpus entry: %w", err)
		}
		failure.Key = key
		r.logger.Info("failure persisted", "key", key)
	}
	return failure, nil
}

// shrink repeatedly proposes shrink-only mutations on a copy and keeps
// only those that still fail the property.
func (r *Runner) shrink(c graft.CorpusValue, rng *rand.Rand) graft.CorpusValue {
	for i := 0; i < r.shrinkAttempts; i++ {
		// Work on a copy so a repairing mutation can be discarded. The
		// serialize/parse cycle is the domain's own deep-copy mechanism.
		clone, ok := r.domain.ParseCorpus(r.domain.SerializeCorpus(c))
		if !ok {
			r.logger.Warn("corpus value no longer round-trips, stopping shrink")
			return c
		}
		r.domain.Mutate(clone, rng, true)
		if r.prop(r.domain.Value(clone)) != nil {
			c = clone
			r.metrics.IncShrinkSteps()
		}
	}
	return c
}

// Replay loads a stored corpus entry, validates it against the domain and
// re-evaluates the property on it. The returned error is the property
// error for a reproduced failure, or a campaign-level error when the entry
// cannot be used.
func (r *Runner) Replay(ctx context.Context, key string) error {
	if r.store == nil {
		return fmt.Errorf("replay requires a corpus store")
	}
	tree, err := r.store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load corpus entry %q: %w", key, err)
	}

	c, ok := r.domain.ParseCorpus(tree)
	if !ok {
		return fmt.Errorf("corpus entry %q does not parse under this domain", key)
	}
	if err := r.domain.ValidateCorpusValue(c); err != nil {
		return fmt.Errorf("corpus entry %q is invalid: %w", key, err)
	}
	return r.prop(r.domain.Value(c))
}
