package ports

import (
	"context"
	"errors"

	"github.com/aretw0/graft/pkg/corpus"
)

// ErrEntryNotFound is returned when a corpus entry key cannot be found in
// the store.
var ErrEntryNotFound = errors.New("corpus entry not found")

// CorpusStore persists serialized corpus trees by key. It is how a search
// engine keeps interesting inputs across runs ("Stop & Resume" for fuzzing
// campaigns).
type CorpusStore interface {
	// Save persists the tree for a given key, overwriting any previous
	// entry.
	Save(ctx context.Context, key string, tree *corpus.Node) error

	// Load retrieves the tree for a given key.
	// Returns ErrEntryNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*corpus.Node, error)

	// Delete removes the entry for a given key.
	Delete(ctx context.Context, key string) error

	// List returns the keys of all stored entries.
	List(ctx context.Context) ([]string, error)
}
