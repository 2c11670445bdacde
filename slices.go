package graft

import (
	"fmt"
	"math/rand/v2"
	"reflect"

	"github.com/aretw0/graft/pkg/corpus"
)

// SliceDomain generates slices whose elements are drawn from a single
// element domain. Corpus type: *sliceCorpus, one element-corpus slot per
// element. Value projects to []any. Fewer elements is simpler, so shrinking
// removes elements (down to the minimum length) or shrinks one element.
type SliceDomain struct {
	seedStock
	elem   Domain
	minLen int
	maxLen int
}

// SliceOf creates a slice domain with lengths in [minLen, maxLen].
func SliceOf(elem Domain, minLen, maxLen int) *SliceDomain {
	if minLen < 0 || minLen > maxLen {
		panic(fmt.Sprintf("graft: SliceOf requires 0 <= minLen <= maxLen, got [%d, %d]", minLen, maxLen))
	}
	return &SliceDomain{elem: elem, minLen: minLen, maxLen: maxLen}
}

// SliceOfN creates a fixed-length slice domain. Mutation (shrinking
// included) never changes the length, only element contents.
func SliceOfN(elem Domain, n int) *SliceDomain {
	return SliceOf(elem, n, n)
}

type sliceCorpus struct {
	elems []CorpusValue
}

func (d *SliceDomain) Init(r *rand.Rand) CorpusValue {
	if c, ok := d.drawSeed(d, r); ok {
		return c
	}
	n := d.minLen + r.IntN(d.maxLen-d.minLen+1)
	elems := make([]CorpusValue, n)
	for i := range elems {
		elems[i] = d.elem.Init(r)
	}
	return &sliceCorpus{elems: elems}
}

func (d *SliceDomain) Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool) {
	sc := c.(*sliceCorpus)
	if shrinkOnly {
		if len(sc.elems) > d.minLen && r.IntN(2) == 0 {
			i := r.IntN(len(sc.elems))
			sc.elems = append(sc.elems[:i], sc.elems[i+1:]...)
			return
		}
		if len(sc.elems) == 0 {
			return
		}
		d.elem.Mutate(sc.elems[r.IntN(len(sc.elems))], r, true)
		return
	}

	op := r.IntN(4)
	switch {
	case op == 0 && len(sc.elems) < d.maxLen:
		i := r.IntN(len(sc.elems) + 1)
		sc.elems = append(sc.elems, nil)
		copy(sc.elems[i+1:], sc.elems[i:])
		sc.elems[i] = d.elem.Init(r)
	case op == 1 && len(sc.elems) > d.minLen:
		i := r.IntN(len(sc.elems))
		sc.elems = append(sc.elems[:i], sc.elems[i+1:]...)
	default:
		if len(sc.elems) == 0 {
			return
		}
		d.elem.Mutate(sc.elems[r.IntN(len(sc.elems))], r, false)
	}
}

func (d *SliceDomain) Value(c CorpusValue) any {
	sc := c.(*sliceCorpus)
	out := make([]any, len(sc.elems))
	for i, ec := range sc.elems {
		out[i] = d.elem.Value(ec)
	}
	return out
}

func (d *SliceDomain) FromValue(v any) (CorpusValue, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Len() < d.minLen || rv.Len() > d.maxLen {
		return nil, false
	}
	elems := make([]CorpusValue, rv.Len())
	for i := range elems {
		ec, ok := d.elem.FromValue(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		elems[i] = ec
	}
	return &sliceCorpus{elems: elems}, true
}

func (d *SliceDomain) ParseCorpus(n *corpus.Node) (CorpusValue, bool) {
	if n.Kind() != corpus.KindSeq || n.Len() < d.minLen || n.Len() > d.maxLen {
		return nil, false
	}
	elems := make([]CorpusValue, n.Len())
	for i := range elems {
		child, _ := n.Child(i)
		ec, ok := d.elem.ParseCorpus(child)
		if !ok {
			return nil, false
		}
		elems[i] = ec
	}
	return &sliceCorpus{elems: elems}, true
}

func (d *SliceDomain) SerializeCorpus(c CorpusValue) *corpus.Node {
	sc := c.(*sliceCorpus)
	children := make([]*corpus.Node, len(sc.elems))
	for i, ec := range sc.elems {
		children[i] = d.elem.SerializeCorpus(ec)
	}
	return corpus.Seq(children...)
}

func (d *SliceDomain) ValidateCorpusValue(c CorpusValue) error {
	sc, ok := c.(*sliceCorpus)
	if !ok {
		return fmt.Errorf("slice domain: corpus value is %T, want a slice record", c)
	}
	if len(sc.elems) < d.minLen || len(sc.elems) > d.maxLen {
		return fmt.Errorf("slice domain: length %d outside [%d, %d]", len(sc.elems), d.minLen, d.maxLen)
	}
	for i, ec := range sc.elems {
		if err := d.elem.ValidateCorpusValue(ec); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (d *SliceDomain) Printer() Printer { return valuePrinter{d} }
