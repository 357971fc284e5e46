// Package testing provides test utilities for the duty-roster library.
//
// It follows Go's convention of shipping test helpers in a dedicated package
// (similar to net/http/httptest). The helpers depend only on the types and
// ledger packages, so the root package's own tests can use them too.
//
// Key utilities:
//   - NewTestLogger: types.Logger writing through testing.T
//   - AssertConservation: ledgers add up to the assignments
//   - AssertNoExceptionDates: no assignment falls on an exception date
//   - AssertHomePlaces: every assignment is at the person's home place
//
// Example usage:
//
//	import (
//	    "testing"
//	    rostertest "github.com/Thomblin/duty-roster/testing"
//	)
//
//	func TestMyRoster(t *testing.T) {
//	    schedule, _ := roster.Generate(&cfg, roster.WithLogger(rostertest.NewTestLogger(t)))
//	    rostertest.AssertConservation(t, schedule.Assignments, schedule.People)
//	}
package testing
