package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache[string]()

	require.NoError(t, c.Set("k", "v", 0))

	got, err := c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache[int]()

	require.NoError(t, c.Set("k", 1, time.Nanosecond))
	time.Sleep(time.Millisecond)

	_, err := c.Get("k")
	assert.ErrorIs(t, err, ErrKeyExpired)
	assert.False(t, c.Has("k"))
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache[string]()

	require.NoError(t, c.Set("k", "v", 0))
	require.NoError(t, c.Delete("k"))

	_, err := c.Get("k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCacheRejectsEmptyKey(t *testing.T) {
	c := NewMemoryCache[string]()
	assert.ErrorIs(t, c.Set("", "v", 0), ErrInvalidKey)
}
