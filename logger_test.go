package stableid

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("ReclaimAndCoalesceEvents", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))

		v := New[int, uint16](WithLogger(logger), WithConsistencyChecks(true))

		ids := make([]uint16, 0, 4)
		for i := range 4 {
			id, err := v.Alloc(i)
			require.NoError(t, err)
			ids = append(ids, id)
		}

		// Removing the last slot leaves a dead suffix, which the reclaimer
		// truncates immediately.
		_, err := v.Remove(ids[3])
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "reclaimed trailing dead slots")

		// An interior hole survives removal and is only closed by Coalesce.
		_, err = v.Remove(ids[1])
		require.NoError(t, err)

		v.Coalesce(nil)
		assert.Contains(t, buf.String(), "coalesce completed")
	})

	t.Run("NilLoggerIsNoop", func(t *testing.T) {
		v := New[int, uint16](WithLogger(nil))

		id, err := v.Alloc(7)
		require.NoError(t, err)

		_, err = v.Remove(id)
		require.NoError(t, err)
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil).Logger)
		assert.NotNil(t, NewTextLogger(slog.LevelInfo).Logger)
		assert.NotNil(t, NewJSONLogger(slog.LevelInfo).Logger)
		assert.NotNil(t, NoopLogger().Logger)
	})
}
