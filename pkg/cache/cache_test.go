package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/didlkit/pkg/cache"
)

// fakeClock is a manually advanced time source for TTL tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestTimedCache_PutGet(t *testing.T) {
	args := []any{"zone", 1}
	kwargs := map[string]any{"detail": true}

	t.Run("returns stored value before the ttl elapses", func(t *testing.T) {
		clock := newFakeClock()
		c := cache.NewTimedCache(cache.WithClock(clock.Now))

		c.Put("queue", args, kwargs, 10*time.Second)
		clock.Advance(9 * time.Second)

		v, ok := c.Get(args, kwargs)
		require.True(t, ok)
		assert.Equal(t, "queue", v)
	})

	t.Run("misses after the ttl elapses", func(t *testing.T) {
		clock := newFakeClock()
		c := cache.NewTimedCache(cache.WithClock(clock.Now))

		c.Put("queue", args, kwargs, 10*time.Second)
		clock.Advance(11 * time.Second)

		_, ok := c.Get(args, kwargs)
		assert.False(t, ok)
	})

	t.Run("expired entry is removed by the read that finds it", func(t *testing.T) {
		clock := newFakeClock()
		c := cache.NewTimedCache(cache.WithClock(clock.Now))

		c.Put("queue", args, kwargs, time.Second)
		clock.Advance(2 * time.Second)
		assert.Equal(t, 1, c.Len(), "lazy expiry: entry stays resident until read")

		c.Get(args, kwargs)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		clock := newFakeClock()
		c := cache.NewTimedCache(cache.WithClock(clock.Now))

		c.Put("queue", args, kwargs, 0)
		clock.Advance(1000 * time.Hour)

		v, ok := c.Get(args, kwargs)
		require.True(t, ok)
		assert.Equal(t, "queue", v)
	})

	t.Run("different arguments never hit", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.Put("queue", args, kwargs, 0)

		_, ok := c.Get([]any{"zone", 2}, kwargs)
		assert.False(t, ok)

		_, ok = c.Get(args, map[string]any{"detail": false})
		assert.False(t, ok)
	})
}

func TestTimedCache_DeleteClear(t *testing.T) {
	t.Run("delete removes the matching entry", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.Put("a", []any{"a"}, nil, 0)
		c.Put("b", []any{"b"}, nil, 0)

		c.Delete([]any{"a"}, nil)

		_, ok := c.Get([]any{"a"}, nil)
		assert.False(t, ok)
		_, ok = c.Get([]any{"b"}, nil)
		assert.True(t, ok)
	})

	t.Run("delete of an absent entry is harmless", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.Delete([]any{"missing"}, nil)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("clear empties all entries", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.Put("a", []any{"a"}, nil, 0)
		c.Put("b", []any{"b"}, nil, 0)

		c.Clear()

		assert.Equal(t, 0, c.Len())
		_, ok := c.Get([]any{"a"}, nil)
		assert.False(t, ok)
	})
}

func TestTimedCache_Enabled(t *testing.T) {
	t.Run("disabling hides previously cached entries", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.Put("v", []any{"k"}, nil, 0)

		c.SetEnabled(false)

		_, ok := c.Get([]any{"k"}, nil)
		assert.False(t, ok)
		assert.False(t, c.Enabled())
	})

	t.Run("put is a no-op while disabled", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.SetEnabled(false)

		c.Put("v", []any{"k"}, nil, 0)
		c.SetEnabled(true)

		_, ok := c.Get([]any{"k"}, nil)
		assert.False(t, ok)
	})

	t.Run("re-enabling restores surviving entries", func(t *testing.T) {
		c := cache.NewTimedCache()
		c.Put("v", []any{"k"}, nil, 0)

		c.SetEnabled(false)
		c.SetEnabled(true)

		v, ok := c.Get([]any{"k"}, nil)
		require.True(t, ok)
		assert.Equal(t, "v", v)
	})
}

func TestNullCache(t *testing.T) {
	t.Run("implements the contract as no-ops", func(t *testing.T) {
		c := cache.NewNullCache()

		c.Put("v", []any{"k"}, nil, time.Minute)
		_, ok := c.Get([]any{"k"}, nil)
		assert.False(t, ok)

		c.Delete([]any{"k"}, nil)
		c.Clear()
		assert.False(t, c.Enabled())

		c.SetEnabled(true)
		assert.False(t, c.Enabled(), "null cache cannot be enabled")
	})
}
