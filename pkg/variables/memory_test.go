package variables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "app_variable_cart_total", Key("cart_total"))
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "theme", "dark"))

	value, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Delete(ctx, "theme"))

	_, ok, err = store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "count", 1))
	require.NoError(t, store.Set(ctx, "count", 2))

	value, ok, err := store.Get(ctx, "count")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestMemoryStore_StructuredValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	payload := map[string]any{"items": []any{"a", "b"}}
	require.NoError(t, store.Set(ctx, "cart", payload))

	value, ok, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, value)
}

func TestMemoryStore_DeleteMissingIsNoOp(t *testing.T) {
	store := NewMemoryStore()

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}
