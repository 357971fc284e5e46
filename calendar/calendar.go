// Package calendar expands a date range into the dates that need a roster.
package calendar

import (
	"slices"
	"time"

	"github.com/Thomblin/duty-roster/types"
)

// Weekdays returns every date in the inclusive range [from, to] that falls on
// one of weekdays, in ascending order.
//
// An empty result is returned when to is before from or weekdays is empty.
func Weekdays(from, to types.Date, weekdays []time.Weekday) []types.Date {
	var wanted [7]bool
	for _, wd := range weekdays {
		wanted[wd] = true
	}

	var dates []types.Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		if wanted[d.Weekday()] {
			dates = append(dates, d)
		}
	}

	return dates
}

// WorkingDays is Weekdays without the exception dates.
func WorkingDays(from, to types.Date, weekdays []time.Weekday, exceptions []types.Date) []types.Date {
	return slices.DeleteFunc(Weekdays(from, to, weekdays), func(d types.Date) bool {
		return slices.Contains(exceptions, d)
	})
}
