package likes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapspot/swapspot/internal/client/clientstorage"
)

// countingStorage counts writes so reconciliation can be shown to reach a
// fixed point.
type countingStorage struct {
	clientstorage.Storage
	sets int
}

func (c *countingStorage) Set(key, value string) {
	c.sets++
	c.Storage.Set(key, value)
}

func TestLocalStoreAddListRemove(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(clientstorage.NewMemory())

	require.NoError(t, store.Add(ctx, "a"))
	require.NoError(t, store.Add(ctx, "b"))

	ids, err := store.List(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, store.Remove(ctx, "a"))
	ids, err = store.List(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestLocalStoreAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(clientstorage.NewMemory())

	require.NoError(t, store.Add(ctx, "a"))
	require.NoError(t, store.Add(ctx, "a"))

	ids, err := store.List(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestLocalStoreRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	mem := clientstorage.NewMemory()
	counter := &countingStorage{Storage: mem}
	store := NewLocalStore(counter)

	require.NoError(t, store.Remove(ctx, "ghost"))
	assert.Equal(t, 0, counter.sets)
}

func TestLocalStoreReconciliationPrunesAndRewrites(t *testing.T) {
	ctx := context.Background()
	mem := clientstorage.NewMemory()
	mem.Set(StorageKey, `["X","Y"]`)
	counter := &countingStorage{Storage: mem}
	store := NewLocalStore(counter)

	// X is gone from the candidate list; it gets pruned and storage rewritten.
	ids, err := store.List(ctx, []string{"Y", "Z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, ids)
	assert.Equal(t, 1, counter.sets)

	raw, ok := mem.Get(StorageKey)
	require.True(t, ok)
	assert.JSONEq(t, `["Y"]`, raw)

	// Reconciling again is a fixed point: no further writes.
	ids, err = store.List(ctx, []string{"Y", "Z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, ids)
	assert.Equal(t, 1, counter.sets)
}

func TestLocalStoreCorruptValueReadsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := clientstorage.NewMemory()
	mem.Set(StorageKey, `{not json`)
	store := NewLocalStore(mem)

	ids, err := store.List(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, ids)

	// The store recovers on the next write.
	require.NoError(t, store.Add(ctx, "a"))
	ids, err = store.List(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestLocalStoreUnavailableStorageNeverFails(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(clientstorage.Unavailable{})

	require.NoError(t, store.Add(ctx, "a"))
	require.NoError(t, store.Remove(ctx, "a"))
	require.NoError(t, store.Clear(ctx))

	ids, err := store.List(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLocalStoreClear(t *testing.T) {
	ctx := context.Background()
	mem := clientstorage.NewMemory()
	store := NewLocalStore(mem)

	require.NoError(t, store.Add(ctx, "a"))
	require.NoError(t, store.Clear(ctx))

	_, ok := mem.Get(StorageKey)
	assert.False(t, ok)
}
