package memory

import (
	"context"
	"sync"

	"github.com/aretw0/graft/pkg/corpus"
	"github.com/aretw0/graft/pkg/ports"
)

// Store implements ports.CorpusStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*corpus.Node
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*corpus.Node),
	}
}

// Save persists the tree in memory. The tree is deep-copied so later
// mutations by the caller cannot reach stored state.
func (s *Store) Save(ctx context.Context, key string, tree *corpus.Node) error {
	clone := tree.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone
	return nil
}

// Load retrieves the tree from memory. A copy is returned so the caller
// cannot mutate store state through shared nodes.
func (s *Store) Load(ctx context.Context, key string) (*corpus.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.data[key]
	if !ok {
		return nil, ports.ErrEntryNotFound
	}
	return tree.Clone(), nil
}

// Delete removes the entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
