package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, waited := poolWait(prev, prev)
		assert.False(t, waited)
		assert.Nil(t, attrs)
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4}
		level, attrs, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
		assert.Contains(t, attrs, slog.Int("in_use", 4))
	})

	t.Run("long waits log at warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond}
		level, _, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
