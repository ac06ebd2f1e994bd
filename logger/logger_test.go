package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Rejects bad arguments", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)

		_, err = New("APP", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("Writes prefix, level and fields", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf)
		require.NoError(t, err)

		l.With("rows", 3).With("cols", 4).Info("maze generated")

		line := buf.String()
		assert.True(t, strings.HasPrefix(line, "[APP] [INFO] "))
		assert.Contains(t, line, "maze generated cols=4 rows=3\n")
	})

	t.Run("Colors the prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("GAME", "\033[36m", &buf)
		require.NoError(t, err)

		l.Error("boom")
		assert.True(t, strings.HasPrefix(buf.String(), "\033[36m[GAME]\033[0m [ERROR] "))
	})

	t.Run("Filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf)
		require.NoError(t, err)

		l.Debug("hidden")
		assert.Empty(t, buf.String())

		require.NoError(t, l.SetLevel("debug"))
		l.Debug("shown")
		assert.Contains(t, buf.String(), "[DEBUG]")

		require.NoError(t, l.SetLevel("error"))
		buf.Reset()
		l.Warn("hidden")
		assert.Empty(t, buf.String())

		assert.Error(t, l.SetLevel("loud"))
	})
}
