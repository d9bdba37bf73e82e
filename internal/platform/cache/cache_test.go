package cache_test

import (
	"testing"
	"time"

	"github.com/dejmenek/pms-backend/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	store := cache.New[string](100, time.Minute)

	_, ok := store.Get("k")
	assert.False(t, ok)

	store.Set("k", "v")
	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	store.Delete("k")
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := cache.New[int](100, time.Minute)

	store.Set("a", 1)
	store.Set("b", 2)
	store.Delete("a")

	_, ok := store.Get("a")
	assert.False(t, ok)
	got, ok := store.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "Product_42", cache.ProductKey(42))
	assert.Equal(t, "UserDetails_abc-123", cache.UserDetailsKey("abc-123"))
}
