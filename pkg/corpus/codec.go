package corpus

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireNode is the single-key object form a node takes on the wire.
// Exactly one field is set for a scalar or sequence node; none for empty.
type wireNode struct {
	Int   *int64   `json:"int,omitempty" yaml:"int,omitempty"`
	Uint  *uint64  `json:"uint,omitempty" yaml:"uint,omitempty"`
	Float *float64 `json:"float,omitempty" yaml:"float,omitempty"`
	Str   *string  `json:"str,omitempty" yaml:"str,omitempty"`
	Bytes *[]byte  `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Seq   *[]*Node `json:"seq,omitempty" yaml:"seq,omitempty"`
}

func (n *Node) wire() *wireNode {
	w := &wireNode{}
	switch n.Kind() {
	case KindInt:
		w.Int = &n.i
	case KindUint:
		w.Uint = &n.u
	case KindFloat:
		w.Float = &n.f
	case KindString:
		w.Str = &n.s
	case KindBytes:
		w.Bytes = &n.b
	case KindSeq:
		sub := n.sub
		if sub == nil {
			sub = []*Node{}
		}
		w.Seq = &sub
	}
	return w
}

func (n *Node) fromWire(w *wireNode) error {
	set := 0
	*n = Node{}
	if w.Int != nil {
		*n = Node{kind: KindInt, i: *w.Int}
		set++
	}
	if w.Uint != nil {
		*n = Node{kind: KindUint, u: *w.Uint}
		set++
	}
	if w.Float != nil {
		*n = Node{kind: KindFloat, f: *w.Float}
		set++
	}
	if w.Str != nil {
		*n = Node{kind: KindString, s: *w.Str}
		set++
	}
	if w.Bytes != nil {
		*n = Node{kind: KindBytes, b: *w.Bytes}
		set++
	}
	if w.Seq != nil {
		sub := *w.Seq
		// A decoded null child slot stands for an empty node.
		for i, child := range sub {
			if child == nil {
				sub[i] = Empty()
			}
		}
		*n = Node{kind: KindSeq, sub: sub}
		set++
	}
	if set > 1 {
		return fmt.Errorf("corpus: node object sets %d variants, want at most one", set)
	}
	return nil
}

// MarshalJSON encodes the node in its single-key object form.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// UnmarshalJSON decodes the single-key object form.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return n.fromWire(&w)
}

// MarshalYAML encodes the node in its single-key mapping form.
func (n *Node) MarshalYAML() (any, error) {
	return n.wire(), nil
}

// UnmarshalYAML decodes the single-key mapping form.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var w wireNode
	if err := value.Decode(&w); err != nil {
		return err
	}
	return n.fromWire(&w)
}
