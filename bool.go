package graft

import (
	"fmt"
	"math/rand/v2"

	"github.com/aretw0/graft/pkg/corpus"
)

// BoolDomain generates booleans. Corpus type: *bool. false is the simpler
// value, so shrinking drives toward it.
type BoolDomain struct {
	seedStock
}

// Bool creates a boolean domain.
func Bool() *BoolDomain { return &BoolDomain{} }

func (d *BoolDomain) Init(r *rand.Rand) CorpusValue {
	if c, ok := d.drawSeed(d, r); ok {
		return c
	}
	b := r.IntN(2) == 1
	return &b
}

func (d *BoolDomain) Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool) {
	p := c.(*bool)
	if shrinkOnly {
		*p = false
		return
	}
	*p = !*p
}

func (d *BoolDomain) Value(c CorpusValue) any { return *c.(*bool) }

func (d *BoolDomain) FromValue(v any) (CorpusValue, bool) {
	b, ok := v.(bool)
	if !ok {
		return nil, false
	}
	return &b, true
}

func (d *BoolDomain) ParseCorpus(n *corpus.Node) (CorpusValue, bool) {
	u, ok := n.AsUint()
	if !ok || u > 1 {
		return nil, false
	}
	b := u == 1
	return &b, true
}

func (d *BoolDomain) SerializeCorpus(c CorpusValue) *corpus.Node {
	if *c.(*bool) {
		return corpus.Uint(1)
	}
	return corpus.Uint(0)
}

func (d *BoolDomain) ValidateCorpusValue(c CorpusValue) error {
	if _, ok := c.(*bool); !ok {
		return fmt.Errorf("bool domain: corpus value is %T, want *bool", c)
	}
	return nil
}

func (d *BoolDomain) Printer() Printer { return valuePrinter{d} }
