package blob

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type disposableStub struct {
	disposed *bool
}

func (d disposableStub) Dispose() { *d.disposed = true }

func TestCacheKey_IsStableAndSixteenHexChars(t *testing.T) {
	k1 := CacheKey("conn", "container", "blob")
	k2 := CacheKey("conn", "container", "blob")
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 16)
}

func TestCacheKey_DiffersByAnyComponent(t *testing.T) {
	base := CacheKey("conn", "container", "blob")
	assert.NotEqual(t, base, CacheKey("other", "container", "blob"))
	assert.NotEqual(t, base, CacheKey("conn", "other", "blob"))
	assert.NotEqual(t, base, CacheKey("conn", "container", "other"))
}

func TestCache_GetOrCreate_CachesOnSecondCall(t *testing.T) {
	c := NewCache()
	calls := 0
	factory := func() (Client, error) {
		calls++
		return "client-instance", nil
	}

	v1, err := c.GetOrCreate("conn", "c", "b", factory)
	assert.NoError(t, err)
	v2, err := c.GetOrCreate("conn", "c", "b", factory)
	assert.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestCache_GetOrCreate_PropagatesFactoryError(t *testing.T) {
	c := NewCache()
	_, err := c.GetOrCreate("conn", "c", "b", func() (Client, error) {
		return nil, fmt.Errorf("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed_DisposesEvicted(t *testing.T) {
	c := NewCache()
	c.size = 2

	disposedA := false
	disposedB := false

	c.Put("a", disposableStub{disposed: &disposedA})
	c.Put("b", disposableStub{disposed: &disposedB})

	// Touch "a" so "b" becomes the least-recently-used entry.
	_, _ = c.Get("a")

	disposedC := false
	c.Put("c", disposableStub{disposed: &disposedC})

	assert.Equal(t, 2, c.Len())
	assert.True(t, disposedB, "least-recently-used entry must be disposed on eviction")
	assert.False(t, disposedA)

	_, stillCached := c.Get("b")
	assert.False(t, stillCached)
}
