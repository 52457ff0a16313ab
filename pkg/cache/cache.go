package cache

import "time"

// Cache is the memoization contract shared by TimedCache and NullCache.
// Operations never fail; a caller that cannot tolerate stale or missing
// entries simply recomputes on a miss.
type Cache interface {
	// Put stores value under the fingerprint of (args, kwargs). A zero ttl
	// stores the entry without expiry. No-op when the cache is disabled.
	Put(value any, args []any, kwargs map[string]any, ttl time.Duration)

	// Get returns the live entry for the fingerprint of (args, kwargs).
	// Reports a miss when the entry is absent, expired, or the cache is
	// disabled.
	Get(args []any, kwargs map[string]any) (any, bool)

	// Delete removes the matching entry if present.
	Delete(args []any, kwargs map[string]any)

	// Clear removes all entries unconditionally.
	Clear()

	// Enabled reports whether the cache currently serves entries.
	Enabled() bool

	// SetEnabled toggles the cache at runtime. Disabling is a strict
	// bypass: it hides all entries regardless of how they were created.
	SetEnabled(enabled bool)
}

// entry is a stored value with its creation time and time-to-live.
// A zero ttl means the entry never expires.
type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
}

func (e entry) live(now time.Time) bool {
	return e.ttl == 0 || now.Before(e.createdAt.Add(e.ttl))
}
