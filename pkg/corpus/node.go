package corpus

import "bytes"

// Kind identifies the variant a Node holds.
type Kind int

const (
	// KindEmpty is a node with no payload. Domains whose corpus carries no
	// information (e.g. constants) serialize to it.
	KindEmpty Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	// KindSeq is an ordered sequence of child nodes.
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindSeq:
		return "seq"
	default:
		return "unknown"
	}
}

// Node is one slot in a serialized corpus tree.
// The zero value (and a nil pointer) behaves as an empty node.
type Node struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	b    []byte
	sub  []*Node
}

// Empty returns a node with no payload.
func Empty() *Node { return &Node{} }

// Int returns a signed integer leaf.
func Int(v int64) *Node { return &Node{kind: KindInt, i: v} }

// Uint returns an unsigned integer leaf.
func Uint(v uint64) *Node { return &Node{kind: KindUint, u: v} }

// Float returns a floating-point leaf.
func Float(v float64) *Node { return &Node{kind: KindFloat, f: v} }

// String returns a string leaf.
func String(v string) *Node { return &Node{kind: KindString, s: v} }

// Bytes returns a raw-bytes leaf. The input is copied.
func Bytes(v []byte) *Node {
	b := make([]byte, len(v))
	copy(b, v)
	return &Node{kind: KindBytes, b: b}
}

// Seq returns a sequence node over the given children, in order.
func Seq(children ...*Node) *Node {
	return &Node{kind: KindSeq, sub: children}
}

// Kind reports the variant of the node. A nil node is empty.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindEmpty
	}
	return n.kind
}

// AsInt returns the signed integer payload, if the node holds one.
func (n *Node) AsInt() (int64, bool) {
	if n == nil || n.kind != KindInt {
		return 0, false
	}
	return n.i, true
}

// AsUint returns the unsigned integer payload, if the node holds one.
func (n *Node) AsUint() (uint64, bool) {
	if n == nil || n.kind != KindUint {
		return 0, false
	}
	return n.u, true
}

// AsFloat returns the floating-point payload, if the node holds one.
func (n *Node) AsFloat() (float64, bool) {
	if n == nil || n.kind != KindFloat {
		return 0, false
	}
	return n.f, true
}

// AsString returns the string payload, if the node holds one.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.s, true
}

// AsBytes returns the raw-bytes payload, if the node holds one.
// The returned slice must not be modified.
func (n *Node) AsBytes() ([]byte, bool) {
	if n == nil || n.kind != KindBytes {
		return nil, false
	}
	return n.b, true
}

// Len returns the number of children of a sequence node, zero otherwise.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.sub)
}

// Child returns the i-th child of a sequence node.
func (n *Node) Child(i int) (*Node, bool) {
	if n == nil || n.kind != KindSeq || i < 0 || i >= len(n.sub) {
		return nil, false
	}
	return n.sub[i], true
}

// Children returns the child slots of a sequence node, in order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.sub
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.b != nil {
		c.b = make([]byte, len(n.b))
		copy(c.b, n.b)
	}
	if n.sub != nil {
		c.sub = make([]*Node, len(n.sub))
		for i, child := range n.sub {
			c.sub[i] = child.Clone()
		}
	}
	return &c
}

// Equal reports whether two trees are structurally identical.
func (n *Node) Equal(other *Node) bool {
	if n.Kind() != other.Kind() {
		return false
	}
	switch n.Kind() {
	case KindEmpty:
		return true
	case KindInt:
		return n.i == other.i
	case KindUint:
		return n.u == other.u
	case KindFloat:
		return n.f == other.f
	case KindString:
		return n.s == other.s
	case KindBytes:
		return bytes.Equal(n.b, other.b)
	case KindSeq:
		if len(n.sub) != len(other.sub) {
			return false
		}
		for i := range n.sub {
			if !n.sub[i].Equal(other.sub[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
