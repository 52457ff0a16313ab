// Package config provides a type-safe, generic and cached way to load
// library configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files (falling back to the default .env
//     in the working directory).
//   - Load parses the environment into any struct via `env` field tags and
//     caches the result per struct type for the lifetime of the process.
//   - MustLoad panics on failure, for configuration the process cannot run
//     without.
//   - ResetCache clears the per-type cache, for tests that mutate the
//     environment between loads.
//
// # Usage
//
//	type CacheConfig struct {
//	    Enabled bool `env:"DIDLKIT_CACHE_ENABLED" envDefault:"true"`
//	}
//
//	var cfg CacheConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Subsequent Load calls for the same struct type are served from the cache
// without re-parsing.
//
// # Error Handling
//
// Sentinel errors compare with errors.Is: ErrParsingConfig, ErrLoadingEnv,
// ErrNilPointer.
package config
