package graft

import (
	"math/rand/v2"

	"github.com/aretw0/graft/pkg/corpus"
)

// MappedDomain projects another domain's values through a pure function.
// Corpus handling is delegated entirely to the inner domain; only Value
// differs. The function is assumed deterministic.
type MappedDomain struct {
	seedStock
	inner Domain
	fn    func(any) any
}

// Map creates a domain producing fn(v) for every v of the inner domain.
func Map(inner Domain, fn func(any) any) *MappedDomain {
	return &MappedDomain{inner: inner, fn: fn}
}

func (d *MappedDomain) Init(r *rand.Rand) CorpusValue {
	if c, ok := d.drawSeed(d, r); ok {
		return c
	}
	return d.inner.Init(r)
}

func (d *MappedDomain) Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool) {
	d.inner.Mutate(c, r, shrinkOnly)
}

func (d *MappedDomain) Value(c CorpusValue) any {
	return d.fn(d.inner.Value(c))
}

// FromValue always reports absence: the mapping function has no inverse.
func (d *MappedDomain) FromValue(any) (CorpusValue, bool) {
	return nil, false
}

func (d *MappedDomain) ParseCorpus(n *corpus.Node) (CorpusValue, bool) {
	return d.inner.ParseCorpus(n)
}

func (d *MappedDomain) SerializeCorpus(c CorpusValue) *corpus.Node {
	return d.inner.SerializeCorpus(c)
}

func (d *MappedDomain) ValidateCorpusValue(c CorpusValue) error {
	return d.inner.ValidateCorpusValue(c)
}

func (d *MappedDomain) Printer() Printer { return valuePrinter{d} }
