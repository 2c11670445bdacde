package campaign_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/adapters/memory"
	"github.com/aretw0/graft/pkg/campaign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooLong = errors.New("slice too long")

// failsAtThree fails every slice of length >= 3, so the minimal failing
// input has exactly 3 elements.
func failsAtThree(v any) error {
	if len(v.([]any)) >= 3 {
		return errTooLong
	}
	return nil
}

func sliceDomain() graft.Domain {
	return graft.SliceOf(graft.Int64Range(0, 100), 0, 20)
}

func TestRunner_PassingProperty(t *testing.T) {
	r := campaign.New(sliceDomain(), func(any) error { return nil },
		campaign.WithRuns(200), campaign.WithSeed(7))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, report.Runs)
	assert.Nil(t, report.Failure)
}

func TestRunner_ShrinksToMinimalFailure(t *testing.T) {
	r := campaign.New(sliceDomain(), failsAtThree,
		campaign.WithRuns(2000), campaign.WithSeed(8))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report.Failure, "a length >= 3 slice must appear within 2000 runs")

	failing := report.Failure.Value.([]any)
	assert.Len(t, failing, 3, "shrinking should reach the minimal failing length")
	assert.ErrorIs(t, report.Failure.Err, errTooLong)
	assert.NotNil(t, report.Failure.Tree)
	assert.NotEmpty(t, report.Failure.Pretty)
}

func TestRunner_Deterministic(t *testing.T) {
	run := func() *campaign.Report {
		r := campaign.New(sliceDomain(), failsAtThree,
			campaign.WithRuns(2000), campaign.WithSeed(9))
		report, err := r.Run(context.Background())
		require.NoError(t, err)
		return report
	}

	a, b := run(), run()
	require.NotNil(t, a.Failure)
	require.NotNil(t, b.Failure)
	assert.Equal(t, a.Runs, b.Runs)
	assert.Equal(t, a.Failure.Value, b.Failure.Value)
}

func TestRunner_PersistAndReplayFailure(t *testing.T) {
	store := memory.NewStore()
	r := campaign.New(sliceDomain(), failsAtThree,
		campaign.WithRuns(2000), campaign.WithSeed(10), campaign.WithStore(store))
	ctx := context.Background()

	report, err := r.Run(ctx)
	require.NoError(t, err)
	require.NotNil(t, report.Failure)
	require.NotEmpty(t, report.Failure.Key)

	// The stored entry must reproduce the failure through the parse path.
	err = r.Replay(ctx, report.Failure.Key)
	assert.ErrorIs(t, err, errTooLong)
}

func TestRunner_Replay_MissingEntry(t *testing.T) {
	store := memory.NewStore()
	r := campaign.New(sliceDomain(), failsAtThree, campaign.WithStore(store))

	err := r.Replay(context.Background(), "no-such-entry")
	assert.Error(t, err)
}

func TestRunner_Replay_RequiresStore(t *testing.T) {
	r := campaign.New(sliceDomain(), failsAtThree)
	assert.Error(t, r.Replay(context.Background(), "k"))
}

func TestRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := campaign.New(sliceDomain(), func(any) error { return nil })
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_DependentDomainIntegration(t *testing.T) {
	// End to end through a flat-mapped domain: fail whenever any element is
	// true; shrinking may only simplify the output side.
	d := graft.FlatMap(func(inputs ...any) graft.Domain {
		n := inputs[0].(int)
		return graft.SliceOfN(graft.Bool(), n)
	}, graft.Just(3))

	r := campaign.New(d, func(v any) error {
		for _, e := range v.([]any) {
			if e.(bool) {
				return errors.New("found a true element")
			}
		}
		return nil
	}, campaign.WithRuns(500), campaign.WithSeed(11))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report.Failure)

	failing := report.Failure.Value.([]any)
	require.Len(t, failing, 3, "the derived shape survives shrinking")

	trues := 0
	for _, e := range failing {
		if e.(bool) {
			trues++
		}
	}
	assert.GreaterOrEqual(t, trues, 1, "shrunk value must still fail")
}

type countingMetrics struct {
	runs, failures, shrinks, observations atomic.Int64
}

func (m *countingMetrics) IncRuns()        { m.runs.Add(1) }
func (m *countingMetrics) IncFailures()    { m.failures.Add(1) }
func (m *countingMetrics) IncShrinkSteps() { m.shrinks.Add(1) }
func (m *countingMetrics) ObservePropertyDuration(float64) {
	m.observations.Add(1)
}

func TestRunner_ReportsMetrics(t *testing.T) {
	m := &countingMetrics{}
	r := campaign.New(sliceDomain(), failsAtThree,
		campaign.WithRuns(2000), campaign.WithSeed(12), campaign.WithMetrics(m))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report.Failure)

	assert.Equal(t, int64(report.Runs), m.runs.Load())
	assert.Equal(t, int64(1), m.failures.Load())
	assert.Equal(t, m.runs.Load(), m.observations.Load())
	assert.Greater(t, m.shrinks.Load(), int64(0))
}
