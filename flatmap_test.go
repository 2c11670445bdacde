package graft

import (
	"math/rand/v2"
	"testing"

	"github.com/aretw0/graft/pkg/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boolSlices is the canonical dependent domain used across these tests:
// a single input fixed to 3, mapped to fixed-length boolean slices.
func boolSlices() *FlatMapDomain {
	return FlatMap(func(inputs ...any) Domain {
		n := inputs[0].(int)
		return SliceOfN(Bool(), n)
	}, Just(3))
}

// variableBoolSlices derives the slice length from a real integer domain,
// so input mutation actually changes the output domain's shape.
func variableBoolSlices(maxLen int64) *FlatMapDomain {
	return FlatMap(func(inputs ...any) Domain {
		n := inputs[0].(int64)
		return SliceOfN(Bool(), int(n))
	}, Int64Range(0, maxLen))
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

func TestFlatMap_Init_FixedScenario(t *testing.T) {
	d := boolSlices()
	r := newRand(1)

	for i := 0; i < 50; i++ {
		c := d.Init(r)
		require.NoError(t, d.ValidateCorpusValue(c))

		v, ok := d.Value(c).([]any)
		require.True(t, ok)
		require.Len(t, v, 3)
		for _, e := range v {
			_, ok := e.(bool)
			assert.True(t, ok, "element should be a boolean, got %T", e)
		}
	}
}

func TestFlatMap_Mutate_PreservesDerivedShape(t *testing.T) {
	d := boolSlices()
	r := newRand(2)
	c := d.Init(r)

	// Whichever branch Mutate takes, the only possible input value is 3, so
	// every reachable value stays a 3-element boolean slice.
	for i := 0; i < 500; i++ {
		d.Mutate(c, r, false)
		require.NoError(t, d.ValidateCorpusValue(c))
		require.Len(t, d.Value(c).([]any), 3)
	}
}

func TestFlatMap_Mutate_ValidityPreserved(t *testing.T) {
	d := variableBoolSlices(16)
	r := newRand(3)
	c := d.Init(r)

	for i := 0; i < 1000; i++ {
		shrinkOnly := i%3 == 0
		d.Mutate(c, r, shrinkOnly)
		require.NoError(t, d.ValidateCorpusValue(c),
			"mutation %d (shrinkOnly=%v) left an invalid corpus value", i, shrinkOnly)
	}
}

func TestFlatMap_Mutate_InputProbability(t *testing.T) {
	// A boolean input flips on every mutation, so a changed input slot is
	// exactly one firing of the input-mutation branch.
	d := FlatMap(func(inputs ...any) Domain {
		return SliceOfN(Bool(), 2)
	}, Bool())
	r := newRand(4)
	c := d.Init(r)

	const samples = 4000
	changed := 0
	for i := 0; i < samples; i++ {
		before := *c.(*flatMapCorpus).inputs[0].(*bool)
		d.Mutate(c, r, false)
		if *c.(*flatMapCorpus).inputs[0].(*bool) != before {
			changed++
		}
	}

	frac := float64(changed) / samples
	assert.InDelta(t, 0.1, frac, 0.03, "input mutation fraction %f", frac)
}

func TestFlatMap_Shrink_NeverTouchesInputs(t *testing.T) {
	d := variableBoolSlices(16)
	r := newRand(5)
	c := d.Init(r)
	fc := c.(*flatMapCorpus)

	before := *fc.inputs[0].(*int64)
	for i := 0; i < 500; i++ {
		d.Mutate(c, r, true)
		assert.Equal(t, before, *fc.inputs[0].(*int64), "shrink mutated an input slot")
		require.NoError(t, d.ValidateCorpusValue(c))
	}
}

func TestFlatMap_FromValue_AlwaysAbsent(t *testing.T) {
	d := boolSlices()

	for _, v := range []any{
		[]any{true, false, true},
		[]any{},
		nil,
		"not even a slice",
	} {
		_, ok := d.FromValue(v)
		assert.False(t, ok, "FromValue(%v) should be absent", v)
	}
}

func TestFlatMap_SerializeParse_RoundTrip(t *testing.T) {
	d := variableBoolSlices(16)
	r := newRand(6)

	c := d.Init(r)
	for i := 0; i < 200; i++ {
		d.Mutate(c, r, i%4 == 0)

		tree := d.SerializeCorpus(c)
		require.Equal(t, corpus.KindSeq, tree.Kind())
		require.Equal(t, 2, tree.Len(), "output slot plus one input slot")

		parsed, ok := d.ParseCorpus(tree)
		require.True(t, ok)
		require.NoError(t, d.ValidateCorpusValue(parsed))
		assert.Equal(t, d.Value(c), d.Value(parsed))
	}
}

func TestFlatMap_ParseCorpus_Malformed(t *testing.T) {
	d := boolSlices()
	r := newRand(7)
	good := d.SerializeCorpus(d.Init(r))

	cases := []struct {
		name string
		tree *corpus.Node
	}{
		{"not a sequence", corpus.Int(3)},
		{"empty node", corpus.Empty()},
		{"missing input slot", corpus.Seq(mustChild(t, good, 0))},
		{"extra slot", corpus.Seq(mustChild(t, good, 0), mustChild(t, good, 1), corpus.Empty())},
		{"input slot wrong shape", corpus.Seq(mustChild(t, good, 0), corpus.Int(3))},
		{"output slot wrong shape", corpus.Seq(corpus.String("x"), mustChild(t, good, 1))},
		{"output slot wrong arity", corpus.Seq(corpus.Seq(corpus.Uint(1)), mustChild(t, good, 1))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := d.ParseCorpus(tc.tree)
			assert.False(t, ok)
		})
	}
}

func mustChild(t *testing.T, n *corpus.Node, i int) *corpus.Node {
	t.Helper()
	c, ok := n.Child(i)
	require.True(t, ok)
	return c
}

func TestFlatMap_Validate_InputsBeforeOutput(t *testing.T) {
	d := variableBoolSlices(8)
	r := newRand(8)
	c := d.Init(r)
	fc := c.(*flatMapCorpus)

	// Corrupt both an input slot and the output slot. The report must blame
	// the input: it is the most specific available cause.
	bad := int64(999)
	fc.inputs[0] = &bad
	fc.output = "garbage"

	err := d.ValidateCorpusValue(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flat-mapped domain input 0")
	assert.Contains(t, err.Error(), "outside [0, 8]")
}

func TestFlatMap_Validate_OutputUnderDerivedDomain(t *testing.T) {
	d := variableBoolSlices(8)
	r := newRand(9)
	c := d.Init(r)
	fc := c.(*flatMapCorpus)

	// Valid inputs, wrong-arity output: the output is checked against the
	// domain derived from the current inputs.
	n := *fc.inputs[0].(*int64)
	fc.output = &sliceCorpus{elems: make([]CorpusValue, n+1)}

	err := d.ValidateCorpusValue(c)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "input 0")
}

func TestFlatMap_Validate_StructuralMismatch(t *testing.T) {
	d := boolSlices()

	assert.Error(t, d.ValidateCorpusValue("nonsense"))
	assert.Error(t, d.ValidateCorpusValue(&flatMapCorpus{output: nil, inputs: nil}))
}

func TestFlatMap_NoInputs(t *testing.T) {
	d := FlatMap(func(inputs ...any) Domain {
		require.Empty(t, inputs)
		return Int64Range(1, 5)
	})
	r := newRand(10)

	c := d.Init(r)
	require.NoError(t, d.ValidateCorpusValue(c))

	tree := d.SerializeCorpus(c)
	require.Equal(t, 1, tree.Len())

	parsed, ok := d.ParseCorpus(tree)
	require.True(t, ok)
	assert.Equal(t, d.Value(c), d.Value(parsed))
}

func TestFlatMap_MultipleInputs(t *testing.T) {
	// Two inputs: slice length and integer payload cap.
	d := FlatMap(func(inputs ...any) Domain {
		n := inputs[0].(int64)
		max := inputs[1].(int64)
		return SliceOfN(Int64Range(0, max), int(n))
	}, Int64Range(0, 8), Int64Range(1, 100))
	r := newRand(11)

	c := d.Init(r)
	for i := 0; i < 300; i++ {
		d.Mutate(c, r, false)
		require.NoError(t, d.ValidateCorpusValue(c))

		fc := c.(*flatMapCorpus)
		n := *fc.inputs[0].(*int64)
		require.Len(t, d.Value(c).([]any), int(n))
	}

	tree := d.SerializeCorpus(c)
	require.Equal(t, 3, tree.Len())
	parsed, ok := d.ParseCorpus(tree)
	require.True(t, ok)
	assert.Equal(t, d.Value(c), d.Value(parsed))
}

func TestFlatMap_SeedShortCircuit(t *testing.T) {
	d := boolSlices()
	seedTree := corpus.Seq(
		corpus.Seq(corpus.Uint(1), corpus.Uint(1), corpus.Uint(1)),
		corpus.Empty(),
	)
	d.AddSeeds(seedTree)
	r := newRand(12)

	sawSeed := false
	for i := 0; i < 100 && !sawSeed; i++ {
		c := d.Init(r)
		require.NoError(t, d.ValidateCorpusValue(c))
		v := d.Value(c).([]any)
		if v[0] == true && v[1] == true && v[2] == true {
			sawSeed = true
		}
	}
	assert.True(t, sawSeed, "Init never replayed the registered seed")
}

func TestFlatMap_Printer_DefersToOutputDomain(t *testing.T) {
	d := boolSlices()
	tree := corpus.Seq(
		corpus.Seq(corpus.Uint(1), corpus.Uint(0), corpus.Uint(1)),
		corpus.Empty(),
	)
	c, ok := d.ParseCorpus(tree)
	require.True(t, ok)

	assert.Equal(t, "[true false true]", d.Printer().Format(c))
}

func TestFlatMap_OutputDomainNeverCached(t *testing.T) {
	derivations := 0
	d := FlatMap(func(inputs ...any) Domain {
		derivations++
		return Bool()
	})
	r := newRand(13)

	c := d.Init(r)
	require.Equal(t, 1, derivations)

	d.Value(c)
	d.Mutate(c, r, false)
	d.SerializeCorpus(c)
	require.NoError(t, d.ValidateCorpusValue(c))

	// Init, Value, Mutate, Serialize and Validate each derived afresh.
	assert.GreaterOrEqual(t, derivations, 5)
}
