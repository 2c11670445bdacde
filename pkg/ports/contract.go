package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/graft/pkg/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCorpusStoreContract runs a suite of tests to verify that a CorpusStore
// implementation adheres to the defined interface contract.
func RunCorpusStoreContract(t *testing.T, store CorpusStore) {
	ctx := context.Background()
	key := "contract-test-entry-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		tree := corpus.Seq(corpus.Seq(corpus.Uint(1), corpus.Uint(0)), corpus.Int(2))

		err := store.Save(ctx, key, tree)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, tree.Equal(loaded), "loaded tree should be structurally identical")
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, corpus.Int(1)))
		require.NoError(t, store.Save(ctx, key, corpus.Int(2)))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		v, ok := loaded.AsInt()
		require.True(t, ok)
		assert.Equal(t, int64(2), v)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, corpus.Int(7)))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrEntryNotFound, "Load after Delete should return ErrEntryNotFound")
	})

	t.Run("List", func(t *testing.T) {
		keys := []string{key + "-a", key + "-b"}
		for _, k := range keys {
			require.NoError(t, store.Save(ctx, k, corpus.Empty()))
		}

		listed, err := store.List(ctx)
		require.NoError(t, err)
		for _, k := range keys {
			assert.Contains(t, listed, k)
		}

		for _, k := range keys {
			require.NoError(t, store.Delete(ctx, k))
		}
	})
}
