package cache

import (
	"sync"
	"time"
)

// TimedCache is a thread-safe fingerprint-keyed store with per-entry TTL.
// Expiry is evaluated lazily on Get: an expired entry is removed by the read
// that finds it, never by a background process.
type TimedCache struct {
	mu      sync.Mutex
	items   map[string]entry
	enabled bool
	now     func() time.Time
}

var _ Cache = (*TimedCache)(nil)

// TimedOption configures a TimedCache at construction time.
type TimedOption func(*TimedCache)

// WithClock overrides the time source. Nil clocks are ignored.
func WithClock(now func() time.Time) TimedOption {
	return func(c *TimedCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewTimedCache creates an empty, enabled cache.
func NewTimedCache(opts ...TimedOption) *TimedCache {
	c := &TimedCache{
		items:   make(map[string]entry),
		enabled: true,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TimedCache) Put(value any, args []any, kwargs map[string]any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}
	c.items[Fingerprint(args, kwargs)] = entry{
		value:     value,
		createdAt: c.now(),
		ttl:       ttl,
	}
}

func (c *TimedCache) Get(args []any, kwargs map[string]any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return nil, false
	}

	key := Fingerprint(args, kwargs)
	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !e.live(c.now()) {
		delete(c.items, key)
		return nil, false
	}
	return e.value, true
}

func (c *TimedCache) Delete(args []any, kwargs map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, Fingerprint(args, kwargs))
}

func (c *TimedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}

// Len reports the number of resident entries, live or expired.
func (c *TimedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *TimedCache) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *TimedCache) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}
