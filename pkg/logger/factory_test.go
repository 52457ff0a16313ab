package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/didlkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("json format by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("hello", slog.String("k", "v"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "v", rec["k"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithTextFormatter())

		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Debug("quiet")
		log.Info("quiet too")
		assert.Empty(t, buf.String())

		log.Warn("loud")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("static attrs on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithTextFormatter(),
			logger.WithAttr(slog.String("component", "didl")),
		)

		log.Info("one")
		log.Info("two")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Contains(t, line, "component=didl")
		}
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})
}

func TestAttrs(t *testing.T) {
	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("item class and counts", func(t *testing.T) {
		assert.Equal(t, "item_class", logger.ItemClass("object.item").Key)
		assert.Equal(t, "object_count", logger.ObjectCount(2).Key)
		assert.Equal(t, "input_preview", logger.InputPreview("<DIDL-Lite…").Key)
	})
}
