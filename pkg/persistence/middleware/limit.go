package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/graft/pkg/corpus"
	"github.com/aretw0/graft/pkg/ports"
)

// ErrEntryTooLarge is returned when a corpus entry exceeds the configured
// size limit.
var ErrEntryTooLarge = errors.New("corpus entry exceeds size limit")

type limitMiddleware struct {
	next     ports.CorpusStore
	maxBytes int
}

// NewLimitMiddleware creates a middleware that rejects corpus entries
// whose JSON encoding exceeds maxBytes. Shrunk failure reproducers are
// expected to be small; a huge entry usually means a runaway domain.
func NewLimitMiddleware(maxBytes int) Middleware {
	if maxBytes <= 0 {
		panic("size limit must be positive")
	}
	return func(next ports.CorpusStore) ports.CorpusStore {
		return &limitMiddleware{next: next, maxBytes: maxBytes}
	}
}

func (m *limitMiddleware) Save(ctx context.Context, key string, tree *corpus.Node) error {
	encoded, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to measure corpus entry: %w", err)
	}
	if len(encoded) > m.maxBytes {
		return fmt.Errorf("%w: %d bytes > %d", ErrEntryTooLarge, len(encoded), m.maxBytes)
	}
	return m.next.Save(ctx, key, tree)
}

func (m *limitMiddleware) Load(ctx context.Context, key string) (*corpus.Node, error) {
	return m.next.Load(ctx, key)
}

func (m *limitMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *limitMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
