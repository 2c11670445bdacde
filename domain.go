package graft

import (
	"fmt"
	"math/rand/v2"

	"github.com/aretw0/graft/pkg/corpus"
)

// CorpusValue is the internal, mutation-oriented representation of a
// generated value, distinct from the externally visible value. Each domain
// documents its own concrete corpus type; it is always a pointer so Mutate
// can work in place. Corpus values are owned exclusively by the caller: a
// domain never keeps references into them across calls.
type CorpusValue = any

// Domain is the capability contract implemented by every input generator,
// leaf or composite.
//
// All operations on a given corpus value are synchronous and must complete
// before the next one begins; domains hold no shared mutable state across
// calls. The rand stream is caller-supplied and consumed in a fixed order,
// so a deterministically seeded stream reproduces a run exactly.
type Domain interface {
	// Init produces an initial corpus value. Registered seeds short-circuit
	// generation: a drawn seed is returned (as a fresh copy) unchanged.
	Init(r *rand.Rand) CorpusValue

	// Mutate rewrites the corpus value in place. When shrinkOnly is true the
	// result is never larger or more complex than the input by the domain's
	// own ordering.
	Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool)

	// Value is the pure projection to the externally visible value.
	Value(c CorpusValue) any

	// FromValue is the best-effort inverse of Value. Domains that are not
	// invertible report absence for every value.
	FromValue(v any) (CorpusValue, bool)

	// ParseCorpus rebuilds a corpus value from its serialized tree.
	// Absence on any malformed input; no partial results.
	ParseCorpus(n *corpus.Node) (CorpusValue, bool)

	// SerializeCorpus encodes the corpus value as a tree that ParseCorpus
	// accepts back.
	SerializeCorpus(c CorpusValue) *corpus.Node

	// ValidateCorpusValue checks structural and semantic validity,
	// independent of parsing. A nil error means valid; a non-nil error
	// carries a short human-readable cause chain.
	ValidateCorpusValue(c CorpusValue) error

	// Printer returns the diagnostics formatter for this domain's corpus
	// values.
	Printer() Printer
}

// Printer formats corpus values for diagnostics.
type Printer interface {
	Format(c CorpusValue) string
}

// valuePrinter formats a corpus value by projecting it through the domain.
type valuePrinter struct{ d Domain }

func (p valuePrinter) Format(c CorpusValue) string {
	return fmt.Sprintf("%v", p.d.Value(c))
}

// seedStock implements the seed short-circuit shared by all domains. Seeds
// are stored as serialized trees and parsed on draw, so callers never
// receive an aliased corpus value.
type seedStock struct {
	seeds []*corpus.Node
}

// AddSeeds registers serialized corpus values for Init to replay. A seed
// that does not parse under the owning domain is skipped at draw time.
func (s *seedStock) AddSeeds(trees ...*corpus.Node) {
	s.seeds = append(s.seeds, trees...)
}

// drawSeed returns a parsed copy of a registered seed, or absence when the
// stock is empty or the coin flip decides to generate instead.
func (s *seedStock) drawSeed(d Domain, r *rand.Rand) (CorpusValue, bool) {
	if len(s.seeds) == 0 || r.IntN(2) == 0 {
		return nil, false
	}
	return d.ParseCorpus(s.seeds[r.IntN(len(s.seeds))])
}
