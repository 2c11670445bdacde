package graft

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aretw0/graft/pkg/corpus"
)

// Int64Domain generates signed integers in a closed range. Corpus type:
// *int64. The complexity ordering is distance from the in-range value
// nearest zero, so shrinking moves toward it.
type Int64Domain struct {
	seedStock
	min, max int64
}

// Int64Range creates an integer domain over [min, max].
func Int64Range(min, max int64) *Int64Domain {
	if min > max {
		panic(fmt.Sprintf("graft: Int64Range requires min <= max, got [%d, %d]", min, max))
	}
	return &Int64Domain{min: min, max: max}
}

// Int64 creates an integer domain over the full int64 range.
func Int64() *Int64Domain {
	return Int64Range(math.MinInt64, math.MaxInt64)
}

// origin is the in-range value nearest zero, the target of shrinking.
func (d *Int64Domain) origin() int64 {
	switch {
	case d.min > 0:
		return d.min
	case d.max < 0:
		return d.max
	default:
		return 0
	}
}

func (d *Int64Domain) uniform(r *rand.Rand) int64 {
	span := uint64(d.max) - uint64(d.min) + 1
	if span == 0 {
		// Full int64 range.
		return int64(r.Uint64())
	}
	return d.min + int64(r.Uint64N(span))
}

func (d *Int64Domain) Init(r *rand.Rand) CorpusValue {
	if c, ok := d.drawSeed(d, r); ok {
		return c
	}
	v := d.uniform(r)
	return &v
}

func (d *Int64Domain) Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool) {
	p := c.(*int64)
	if shrinkOnly {
		// Halve the distance to the origin; the last unit steps straight
		// onto it. A no-op once there, which keeps shrink mode free of
		// complexity increases.
		diff := *p - d.origin()
		step := diff / 2
		if step == 0 {
			step = diff
		}
		*p -= step
		return
	}
	switch r.IntN(3) {
	case 0:
		if *p < d.max {
			*p++
		}
	case 1:
		if *p > d.min {
			*p--
		}
	default:
		*p = d.uniform(r)
	}
}

func (d *Int64Domain) Value(c CorpusValue) any { return *c.(*int64) }

func (d *Int64Domain) FromValue(v any) (CorpusValue, bool) {
	var n int64
	switch t := v.(type) {
	case int64:
		n = t
	case int:
		n = int64(t)
	default:
		return nil, false
	}
	if n < d.min || n > d.max {
		return nil, false
	}
	return &n, true
}

func (d *Int64Domain) ParseCorpus(n *corpus.Node) (CorpusValue, bool) {
	v, ok := n.AsInt()
	if !ok || v < d.min || v > d.max {
		return nil, false
	}
	return &v, true
}

func (d *Int64Domain) SerializeCorpus(c CorpusValue) *corpus.Node {
	return corpus.Int(*c.(*int64))
}

func (d *Int64Domain) ValidateCorpusValue(c CorpusValue) error {
	p, ok := c.(*int64)
	if !ok {
		return fmt.Errorf("int64 domain: corpus value is %T, want *int64", c)
	}
	if *p < d.min || *p > d.max {
		return fmt.Errorf("int64 domain: value %d outside [%d, %d]", *p, d.min, d.max)
	}
	return nil
}

func (d *Int64Domain) Printer() Printer { return valuePrinter{d} }
