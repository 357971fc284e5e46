package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Thomblin/duty-roster/types"
)

// TestLogger writes log lines through testing.TB so they show up next to the
// failing test.
type TestLogger struct {
	tb testing.TB
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger writing to tb.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    log := logger.NewTest(t)
//	    log.Info("schedule generated", "assignments", 12)
//	}
func NewTest(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

// Debug logs a debug-level message.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("DEBUG: %s%s", msg, formatKeyValues(keysAndValues))
}

// Info logs an info-level message.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("INFO: %s%s", msg, formatKeyValues(keysAndValues))
}

// Warn logs a warning-level message.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("WARN: %s%s", msg, formatKeyValues(keysAndValues))
}

// Error logs an error-level message.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Logf("ERROR: %s%s", msg, formatKeyValues(keysAndValues))
}

// formatKeyValues renders key/value pairs as " k=v k2=v2"; a dangling key is
// printed as k=<missing>.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&sb, " %v=<missing>", keysAndValues[i])
		}
	}

	return sb.String()
}
