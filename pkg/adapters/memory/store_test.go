package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/graft/pkg/adapters/memory"
	"github.com/aretw0/graft/pkg/corpus"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunCorpusStoreContract(t, memory.NewStore())
}

func TestMemoryStore_IsolatesStoredTrees(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	tree := corpus.Seq(corpus.Bytes([]byte{1, 2, 3}))
	require.NoError(t, store.Save(ctx, "k", tree))

	// Mutating the caller's tree after Save must not affect the store.
	leaf, _ := tree.Child(0)
	b, _ := leaf.AsBytes()
	b[0] = 99

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	lb, _ := mustChildBytes(t, loaded, 0)
	assert.Equal(t, byte(1), lb[0])

	// Mutating a loaded tree must not affect later loads either.
	lb[0] = 77
	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	ab, _ := mustChildBytes(t, again, 0)
	assert.Equal(t, byte(1), ab[0])
}

func mustChildBytes(t *testing.T, n *corpus.Node, i int) ([]byte, bool) {
	t.Helper()
	c, ok := n.Child(i)
	require.True(t, ok)
	return c.AsBytes()
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "entry"
			assert.NoError(t, store.Save(ctx, key, corpus.Int(int64(n))))
			_, _ = store.Load(ctx, key)
			_, err := store.List(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
