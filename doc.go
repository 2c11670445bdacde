/*
Package graft is a structured test-input generation library. Inputs are
described declaratively as "domains": composable generators that can produce
an initial value, mutate a previously produced value toward new or simpler
variants, and serialize, parse and validate their internal representation so
a search engine can persist and replay interesting inputs.

# Concept

Every domain, leaf or composite, implements the same capability contract
(Domain). A domain works on two representations: the externally visible
value, and the corpus value: an internal, mutation-friendly form owned by
the caller. Corpus values serialize to positional trees (pkg/corpus) that
round-trip through JSON or YAML, which is how corpus stores and the CLI
tooling persist them.

# Key Features

  - Deterministic Replay: operations consume a caller-supplied rand stream
    in a fixed order, so a fixed seed reproduces a run exactly.
  - Composable Domains: leaves (Bool, Int64Range, Just, SliceOf) combine
    through Map and FlatMap into arbitrarily structured inputs.
  - Dependent Generation: FlatMap builds domains whose shape depends on
    values drawn from other domains, derived fresh on every operation.
  - Shrinking: every domain supports a shrink-only mutation mode that only
    proposes simpler values, used to minimize failure-inducing inputs.

# Usage

Build a domain, then drive it with pkg/campaign or by hand:

	d := graft.FlatMap(func(inputs ...any) graft.Domain {
		n := inputs[0].(int)
		return graft.SliceOfN(graft.Bool(), n)
	}, graft.Just(3))

	rng := rand.New(rand.NewPCG(1, 2))
	c := d.Init(rng)
	fmt.Println(d.Value(c)) // a 3-element boolean sequence

	d.Mutate(c, rng, false) // a new variant, in place
	tree := d.SerializeCorpus(c)

The campaign runner (pkg/campaign) wraps this loop with property checking,
shrinking, corpus persistence (pkg/adapters) and metrics (pkg/observability).
*/
package graft
