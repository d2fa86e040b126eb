package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/pet-crud-service/pkg/kvstore"
)

func TestMemory_PutGetRoundtrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := kvstore.NewMemory[map[string]any]()

	record := map[string]any{"id": "pet-1", "name": "Rex", "age": 3.0}
	require.NoError(t, store.Put(ctx, "pet-1", record))

	got, err := store.Get(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, "Rex", (*got)["name"])
	assert.Equal(t, 3.0, (*got)["age"])
}

func TestMemory_GetMiss(t *testing.T) {
	t.Parallel()

	store := kvstore.NewMemory[map[string]any]()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestMemory_OverwriteReplacesWholeItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := kvstore.NewMemory[map[string]any]()

	require.NoError(t, store.Put(ctx, "k", map[string]any{"name": "Rex", "color": "brown"}))
	require.NoError(t, store.Put(ctx, "k", map[string]any{"name": "Max"}))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "Max", (*got)["name"])
	assert.NotContains(t, *got, "color", "overwrite must not merge fields")
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := kvstore.NewMemory[map[string]any]()

	require.NoError(t, store.Put(ctx, "k", map[string]any{"name": "Rex"}))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"), "deleting an absent key is not an error")

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemory_GetReturnsIndependentCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := kvstore.NewMemory[map[string]any]()
	require.NoError(t, store.Put(ctx, "k", map[string]any{"name": "Rex"}))

	first, err := store.Get(ctx, "k")
	require.NoError(t, err)
	(*first)["name"] = "mutated"

	second, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "Rex", (*second)["name"], "mutating a returned record must not leak into the store")
}
