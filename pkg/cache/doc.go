// Package cache provides a thread-safe, argument-fingerprinted memoization
// cache with per-entry time-to-live, a runtime on/off switch, and an inert
// null variant for callers that want to stay cache-agnostic.
//
// Entries are addressed by a fingerprint derived from the positional and
// keyword arguments of the call being memoized. Two calls with equal
// positional sequences and equal keyword mappings always collide on the same
// entry, regardless of keyword or map insertion order.
//
// # Usage
//
// Create a cache and memoize an expensive call:
//
//	c := cache.NewTimedCache()
//
//	args := []any{"RINCON_000E5812345601400", "Queue"}
//	kwargs := map[string]any{"start": 0, "count": 100}
//
//	if v, ok := c.Get(args, kwargs); ok {
//		return v.(BrowseResult)
//	}
//	result := expensiveBrowse(args, kwargs)
//	c.Put(result, args, kwargs, 5*time.Second)
//
// A zero TTL stores the entry without expiry. Expiry is evaluated lazily on
// Get; there is no background sweeper, so an expired entry stays resident
// until the next read for its fingerprint or an explicit Clear.
//
// # Process-wide selection
//
// New selects between the timed cache and the null cache from the
// DIDLKIT_CACHE_ENABLED environment variable (default true):
//
//	c := cache.New() // *TimedCache, or *NullCache when disabled
//
// Either variant satisfies the Cache interface, so call sites never need to
// know whether caching is actually happening.
//
// # Disabling at runtime
//
// SetEnabled(false) on a timed cache is a strict bypass: Put becomes a no-op
// and Get reports a miss for every fingerprint, including entries stored
// while the cache was enabled. Re-enabling restores visibility of entries
// that have not expired in the meantime.
package cache
