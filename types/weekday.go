package types

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a time.Weekday that reads and writes its three-letter English
// abbreviation ("Mon", "Tue", ...). Full names are accepted on input.
type Weekday time.Weekday

// WeekOrder lists the weekdays Monday first, the order used in reports.
var WeekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ShortWeekday returns the three-letter abbreviation of wd.
func ShortWeekday(wd time.Weekday) string {
	return wd.String()[:3]
}

// ParseWeekday parses an abbreviated or full English weekday name, ignoring case.
func ParseWeekday(s string) (time.Weekday, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, wd := range WeekOrder {
		full := strings.ToLower(wd.String())
		if want == full || want == full[:3] {
			return wd, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// Std returns the underlying time.Weekday.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w)
}

// String returns the three-letter abbreviation.
func (w Weekday) String() string {
	return ShortWeekday(time.Weekday(w))
}

// MarshalText implements encoding.TextMarshaler.
func (w Weekday) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Weekday) UnmarshalText(text []byte) error {
	wd, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = Weekday(wd)

	return nil
}
