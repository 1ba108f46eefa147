package kvstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k1", []byte(`{"a":1}`)))
	val, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), val)

	// Overwrite
	require.NoError(t, store.Set(ctx, "k1", []byte(`{"a":2}`)))
	val, err = store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), val)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k1", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k1"))
	_, err := store.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "k1"))
}

func TestMemoryStoreGetByPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "projector:B", []byte("b")))
	require.NoError(t, store.Set(ctx, "projector:A", []byte("a")))
	require.NoError(t, store.Set(ctx, "service:1", []byte("s")))

	vals, err := store.GetByPrefix(ctx, "projector:")
	require.NoError(t, err)
	require.Len(t, vals, 2)
	// Ordered by key
	assert.Equal(t, []byte("a"), vals[0])
	assert.Equal(t, []byte("b"), vals[1])

	vals, err = store.GetByPrefix(ctx, "rma:")
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestMemoryStoreKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "projector:A", []byte("a")))
	require.NoError(t, store.AppendList(ctx, "projector_services:A", "SRV-1"))

	keys, err := store.Keys(ctx, "projector_services:")
	require.NoError(t, err)
	assert.Equal(t, []string{"projector_services:A"}, keys)
}

func TestMemoryStoreLists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	list, err := store.GetList(ctx, "idx")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.AppendList(ctx, "idx", "a"))
	require.NoError(t, store.AppendList(ctx, "idx", "b", "c"))
	list, err = store.GetList(ctx, "idx")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list)

	require.NoError(t, store.SetList(ctx, "idx", []string{"x"}))
	list, err = store.GetList(ctx, "idx")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, list)
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.AppendList(ctx, "idx", fmt.Sprintf("id-%d", n))
		}(i)
	}
	wg.Wait()

	list, err := store.GetList(ctx, "idx")
	require.NoError(t, err)
	assert.Len(t, list, 50)
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	val := []byte("original")
	require.NoError(t, store.Set(ctx, "k", val))
	val[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
