// Package corpus defines the serialized tree format used to persist and
// replay corpus values.
//
// A tree is an ordered, positional structure: a Node is either a scalar leaf
// (integer, float, string or raw bytes) or a sequence of child nodes. Domains
// interpret children strictly by position; the format itself attaches no
// names and no metadata. Trees round-trip through JSON and YAML, which is
// what corpus stores and the CLI tooling rely on.
package corpus
