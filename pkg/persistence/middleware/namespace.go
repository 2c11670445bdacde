package middleware

import (
	"context"
	"strings"

	"github.com/aretw0/graft/pkg/corpus"
	"github.com/aretw0/graft/pkg/ports"
)

type namespaceMiddleware struct {
	next   ports.CorpusStore
	prefix string
}

// NewNamespaceMiddleware creates a middleware that scopes all keys under a
// prefix, so several campaigns can share one store without colliding.
func NewNamespaceMiddleware(prefix string) Middleware {
	return func(next ports.CorpusStore) ports.CorpusStore {
		return &namespaceMiddleware{next: next, prefix: prefix}
	}
}

func (m *namespaceMiddleware) Save(ctx context.Context, key string, tree *corpus.Node) error {
	return m.next.Save(ctx, m.prefix+key, tree)
}

func (m *namespaceMiddleware) Load(ctx context.Context, key string) (*corpus.Node, error) {
	return m.next.Load(ctx, m.prefix+key)
}

func (m *namespaceMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, m.prefix+key)
}

func (m *namespaceMiddleware) List(ctx context.Context) ([]string, error) {
	keys, err := m.next.List(ctx)
	if err != nil {
		return nil, err
	}
	scoped := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, m.prefix) {
			scoped = append(scoped, strings.TrimPrefix(k, m.prefix))
		}
	}
	return scoped, nil
}
