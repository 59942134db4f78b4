package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/application/ports"
)

func TestStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Set(ctx, "latest-products", []byte(`{"products":[]}`)))

	assert.True(t, store.Has(ctx, "latest-products"))
	value, err := store.Get(ctx, "latest-products")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"products":[]}`), value)
}

func TestStore_GetMiss(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Get(ctx, "admin-stats")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
	assert.False(t, store.Has(ctx, "admin-stats"))
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Set(ctx, "categories", []byte(`["laptop"]`)))
	require.NoError(t, store.Set(ctx, "categories", []byte(`["laptop","mobile"]`)))

	value, err := store.Get(ctx, "categories")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["laptop","mobile"]`), value)
	assert.Equal(t, 1, store.Len())
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Set(ctx, "all-orders", []byte("[]")))
	require.NoError(t, store.Delete(ctx, "all-orders"))
	assert.False(t, store.Has(ctx, "all-orders"))

	// Deleting an absent key must not fail.
	require.NoError(t, store.Delete(ctx, "all-orders"))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Set(ctx, "product-1", []byte("original")))

	value, err := store.Get(ctx, "product-1")
	require.NoError(t, err)
	value[0] = 'X'

	again, err := store.Get(ctx, "product-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("product-%d", n%8)
			for j := 0; j < 100; j++ {
				_ = store.Set(ctx, key, []byte{byte(j)})
				store.Has(ctx, key)
				_, _ = store.Get(ctx, key)
				_ = store.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
