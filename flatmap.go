package graft

import (
	"fmt"
	"math/rand/v2"

	"github.com/aretw0/graft/pkg/corpus"
)

// Mapper derives a fresh output domain from one concrete value per input
// domain, in declaration order.
//
// A mapper must be a deterministic, referentially stable function of its
// arguments: equal input values must yield output domains with equivalent
// generation, mutation, validation and serialization behavior. Nothing at
// runtime can verify this; behavior under a non-deterministic or
// side-effecting mapper is undefined.
type Mapper func(inputs ...any) Domain

// FlatMapDomain composes a mapper with an ordered sequence of input
// domains. The domain the final value is drawn from (the "output domain")
// does not exist until runtime: it depends on values produced by the input
// domains, is re-derived from the current input corpus slots on every
// operation, and is never cached or persisted.
//
// Corpus type: *flatMapCorpus, a positional record holding the output
// corpus in slot 0 and one corpus value per input domain after it. The
// output slot is only meaningful under the domain derived from the current
// input slots.
type FlatMapDomain struct {
	seedStock
	mapper Mapper
	inputs []Domain
}

// inputMutationProb is the chance that Mutate touches the inputs, forcing
// the output corpus to be reinitialized, instead of mutating the output.
const inputMutationProb = 0.1

// FlatMap creates a dependent domain: mapper receives the value of each
// input domain and returns the domain the final value is drawn from.
// No validation happens at construction; a mapper that cannot handle some
// input value surfaces only through the domain it returns.
func FlatMap(mapper Mapper, inputs ...Domain) *FlatMapDomain {
	return &FlatMapDomain{mapper: mapper, inputs: inputs}
}

type flatMapCorpus struct {
	output CorpusValue
	inputs []CorpusValue
}

// outputDomain materializes the current input values and derives the output
// domain through the mapper. Every caller gets a fresh derivation.
func (d *FlatMapDomain) outputDomain(inputs []CorpusValue) Domain {
	vals := make([]any, len(d.inputs))
	for i, in := range d.inputs {
		vals[i] = in.Value(inputs[i])
	}
	return d.mapper(vals...)
}

func (d *FlatMapDomain) Init(r *rand.Rand) CorpusValue {
	if c, ok := d.drawSeed(d, r); ok {
		return c
	}
	inputs := make([]CorpusValue, len(d.inputs))
	for i, in := range d.inputs {
		inputs[i] = in.Init(r)
	}
	out := d.outputDomain(inputs)
	return &flatMapCorpus{output: out.Init(r), inputs: inputs}
}

func (d *FlatMapDomain) Mutate(c CorpusValue, r *rand.Rand, shrinkOnly bool) {
	fc := c.(*flatMapCorpus)
	// There is no way to tell whether the current output corpus value is
	// still consistent with the output domain derived from mutated inputs,
	// so mutating the inputs forces reinitialization of the output slot.
	// When shrinking, reinitializing would lose the still-failing output
	// value, so input mutation is disabled entirely.
	mutateInputs := !shrinkOnly && r.Float64() < inputMutationProb
	if mutateInputs {
		for i, in := range d.inputs {
			in.Mutate(fc.inputs[i], r, shrinkOnly)
		}
		fc.output = d.outputDomain(fc.inputs).Init(r)
		return
	}
	// The output domain is rebuilt on every call, so domains that
	// accumulate internal state between calls lose it here. Accepted
	// trade-off for keeping the derivation a pure function of the input
	// slots.
	d.outputDomain(fc.inputs).Mutate(fc.output, r, shrinkOnly)
}

func (d *FlatMapDomain) Value(c CorpusValue) any {
	fc := c.(*flatMapCorpus)
	return d.outputDomain(fc.inputs).Value(fc.output)
}

// FromValue always reports absence: the input values that produced an
// output value cannot be recovered, nor even the output domain it came
// from.
func (d *FlatMapDomain) FromValue(any) (CorpusValue, bool) {
	return nil, false
}

func (d *FlatMapDomain) ParseCorpus(n *corpus.Node) (CorpusValue, bool) {
	if n.Kind() != corpus.KindSeq || n.Len() != len(d.inputs)+1 {
		return nil, false
	}
	// Slots 1..N are the input corpora; they must parse first so the
	// output domain can be derived for slot 0.
	inputs := make([]CorpusValue, len(d.inputs))
	for i, in := range d.inputs {
		child, _ := n.Child(i + 1)
		ic, ok := in.ParseCorpus(child)
		if !ok {
			return nil, false
		}
		inputs[i] = ic
	}
	child, _ := n.Child(0)
	output, ok := d.outputDomain(inputs).ParseCorpus(child)
	if !ok {
		return nil, false
	}
	return &flatMapCorpus{output: output, inputs: inputs}, true
}

func (d *FlatMapDomain) SerializeCorpus(c CorpusValue) *corpus.Node {
	fc := c.(*flatMapCorpus)
	children := make([]*corpus.Node, 0, len(d.inputs)+1)
	children = append(children, d.outputDomain(fc.inputs).SerializeCorpus(fc.output))
	for i, in := range d.inputs {
		children = append(children, in.SerializeCorpus(fc.inputs[i]))
	}
	return corpus.Seq(children...)
}

func (d *FlatMapDomain) ValidateCorpusValue(c CorpusValue) error {
	fc, ok := c.(*flatMapCorpus)
	if !ok {
		return fmt.Errorf("flat-mapped domain: corpus value is %T, want a flat-map record", c)
	}
	if len(fc.inputs) != len(d.inputs) {
		return fmt.Errorf("flat-mapped domain: record has %d input slots, want %d", len(fc.inputs), len(d.inputs))
	}
	// Inputs first, in declared order, so a failure is attributed to the
	// most specific available cause.
	for i, in := range d.inputs {
		if err := in.ValidateCorpusValue(fc.inputs[i]); err != nil {
			return fmt.Errorf("invalid value for flat-mapped domain input %d: %w", i, err)
		}
	}
	return d.outputDomain(fc.inputs).ValidateCorpusValue(fc.output)
}

// Printer stays bound to the mapper and input domains; formatting itself is
// deferred to the derived output domain's printer.
func (d *FlatMapDomain) Printer() Printer {
	return flatMapPrinter{d: d}
}

type flatMapPrinter struct {
	d *FlatMapDomain
}

func (p flatMapPrinter) Format(c CorpusValue) string {
	fc, ok := c.(*flatMapCorpus)
	if !ok {
		return fmt.Sprintf("%v", c)
	}
	return p.d.outputDomain(fc.inputs).Printer().Format(fc.output)
}
