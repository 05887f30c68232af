package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "farm.csv", []byte("2020,Ontario")))

	data, err := ReadAll(ctx, store, "farm.csv")
	require.NoError(t, err)
	assert.Equal(t, "2020,Ontario", string(data))
}

func TestMemoryStoreOpenMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("original")
	require.NoError(t, store.Put(ctx, "a", data))

	// Mutating the caller's slice must not affect the stored blob.
	data[0] = 'X'

	got, err := ReadAll(ctx, store, "a")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "exports/b", nil))
	require.NoError(t, store.Put(ctx, "exports/a", nil))
	require.NoError(t, store.Put(ctx, "other", nil))

	names, err := store.List(ctx, "exports/")
	require.NoError(t, err)
	assert.Equal(t, []string{"exports/a", "exports/b"}, names)
}
