package cache

import "time"

// NullCache implements the Cache contract as permanent no-ops: Put stores
// nothing, Get always misses, Delete and Clear succeed trivially. It lets
// call sites stay cache-agnostic when caching is disabled process-wide.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache creates an inert cache.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Put(any, []any, map[string]any, time.Duration) {}

func (*NullCache) Get([]any, map[string]any) (any, bool) { return nil, false }

func (*NullCache) Delete([]any, map[string]any) {}

func (*NullCache) Clear() {}

func (*NullCache) Enabled() bool { return false }

func (*NullCache) SetEnabled(bool) {}
