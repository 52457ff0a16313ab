package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/didlkit/pkg/cache"
)

func TestFingerprint_Equality(t *testing.T) {
	t.Run("equal args and kwargs produce equal fingerprints", func(t *testing.T) {
		a := cache.Fingerprint([]any{"browse", 42}, map[string]any{"count": 100, "start": 0})
		b := cache.Fingerprint([]any{"browse", 42}, map[string]any{"count": 100, "start": 0})
		assert.Equal(t, a, b)
	})

	t.Run("kwarg construction order is irrelevant", func(t *testing.T) {
		first := map[string]any{}
		first["alpha"] = 1
		first["beta"] = 2
		second := map[string]any{}
		second["beta"] = 2
		second["alpha"] = 1

		assert.Equal(t,
			cache.Fingerprint(nil, first),
			cache.Fingerprint(nil, second),
		)
	})

	t.Run("nil and empty collections collide", func(t *testing.T) {
		assert.Equal(t,
			cache.Fingerprint(nil, nil),
			cache.Fingerprint([]any{}, map[string]any{}),
		)
	})

	t.Run("nested mappings compare by value", func(t *testing.T) {
		a := cache.Fingerprint(
			[]any{[]any{"x", "y"}},
			map[string]any{"filter": map[string]any{"genre": "jazz", "year": 1959}},
		)
		b := cache.Fingerprint(
			[]any{[]any{"x", "y"}},
			map[string]any{"filter": map[string]any{"year": 1959, "genre": "jazz"}},
		)
		assert.Equal(t, a, b)
	})

	t.Run("non-ascii text is supported", func(t *testing.T) {
		a := cache.Fingerprint([]any{"Größe", "観察"}, map[string]any{"läßt": "zählen"})
		b := cache.Fingerprint([]any{"Größe", "観察"}, map[string]any{"läßt": "zählen"})
		assert.Equal(t, a, b)
	})
}

func TestFingerprint_Inequality(t *testing.T) {
	t.Run("positional order matters", func(t *testing.T) {
		assert.NotEqual(t,
			cache.Fingerprint([]any{"a", "b"}, nil),
			cache.Fingerprint([]any{"b", "a"}, nil),
		)
	})

	t.Run("different values miss", func(t *testing.T) {
		assert.NotEqual(t,
			cache.Fingerprint([]any{1}, nil),
			cache.Fingerprint([]any{2}, nil),
		)
	})

	t.Run("different key sets miss", func(t *testing.T) {
		assert.NotEqual(t,
			cache.Fingerprint(nil, map[string]any{"a": 1}),
			cache.Fingerprint(nil, map[string]any{"b": 1}),
		)
	})

	t.Run("value type is part of the key", func(t *testing.T) {
		assert.NotEqual(t,
			cache.Fingerprint([]any{1}, nil),
			cache.Fingerprint([]any{"1"}, nil),
		)
	})

	t.Run("positional and keyword placement differ", func(t *testing.T) {
		assert.NotEqual(t,
			cache.Fingerprint([]any{"v"}, nil),
			cache.Fingerprint(nil, map[string]any{"v": nil}),
		)
	})
}
