package graft

import (
	"fmt"
	"math/rand/v2"
	"reflect"

	"github.com/aretw0/graft/pkg/corpus"
)

// JustDomain always yields one fixed value. Its corpus carries no
// information, so it serializes to an empty node and mutation is a no-op.
type JustDomain struct {
	seedStock
	value any
}

// Just creates a domain fixed to a single value.
func Just(v any) *JustDomain { return &JustDomain{value: v} }

type justCorpus struct{}

func (d *JustDomain) Init(r *rand.Rand) CorpusValue {
	if c, ok := d.drawSeed(d, r); ok {
		return c
	}
	return &justCorpus{}
}

func (d *JustDomain) Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool) {
	// Only one possible value; nothing to mutate.
}

func (d *JustDomain) Value(c CorpusValue) any { return d.value }

func (d *JustDomain) FromValue(v any) (CorpusValue, bool) {
	if !reflect.DeepEqual(v, d.value) {
		return nil, false
	}
	return &justCorpus{}, true
}

func (d *JustDomain) ParseCorpus(n *corpus.Node) (CorpusValue, bool) {
	if n.Kind() != corpus.KindEmpty {
		return nil, false
	}
	return &justCorpus{}, true
}

func (d *JustDomain) SerializeCorpus(c CorpusValue) *corpus.Node {
	return corpus.Empty()
}

func (d *JustDomain) ValidateCorpusValue(c CorpusValue) error {
	if _, ok := c.(*justCorpus); !ok {
		return fmt.Errorf("constant domain: corpus value is %T, want an empty record", c)
	}
	return nil
}

func (d *JustDomain) Printer() Printer { return valuePrinter{d} }
