package cache

import "github.com/dmitrymomot/didlkit/pkg/config"

// Config controls process-wide cache selection.
type Config struct {
	// Enabled selects the timed cache; when false, New returns the null
	// variant and every created cache is a no-op.
	Enabled bool `env:"DIDLKIT_CACHE_ENABLED" envDefault:"true"`
}

// New selects the cache variant from the process-wide enablement flag.
// Configuration errors fall back to an enabled timed cache: caching is an
// optimization and must not block the caller.
func New() Cache {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return NewTimedCache()
	}
	if !cfg.Enabled {
		return NewNullCache()
	}
	return NewTimedCache()
}
