package testing

import (
	"testing"

	"github.com/Thomblin/duty-roster/internal/logger"
	"github.com/Thomblin/duty-roster/types"
)

// NewTestLogger creates a logger that writes to the testing.T log, so engine
// output shows up next to failing tests.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
