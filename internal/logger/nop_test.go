package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Thomblin/duty-roster/types"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	var _ types.Logger = logger

	require.NotPanics(t, func() {
		logger.Debug("")
		logger.Info("schedule generated", nil)
		logger.Warn("message")
		logger.Error("message", "single")
	})
}

func TestFormatKeyValues(t *testing.T) {
	require.Empty(t, formatKeyValues(nil))
	require.Equal(t, " date=2025-09-06 place=A", formatKeyValues([]any{"date", "2025-09-06", "place", "A"}))
	require.Equal(t, " slot=<missing>", formatKeyValues([]any{"slot"}))
}

func TestTestLogger(t *testing.T) {
	var _ types.Logger = (*TestLogger)(nil)

	log := NewTest(t)
	require.NotPanics(t, func() {
		log.Debug("unfilled slot", "date", "2025-09-06", "place", "A")
		log.Info("run finished")
		log.Warn("odd config", "key")
		log.Error("failed")
	})
}

func BenchmarkNopLogger(b *testing.B) {
	logger := NewNop()

	for b.Loop() {
		logger.Debug("benchmark message", "key1", "value1", "key2", 42)
	}
}
