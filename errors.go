package roster

import "github.com/Thomblin/duty-roster/types"

// Sentinel errors, re-exported from the types package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrConfigRequired is returned when the configuration is nil.
	ErrConfigRequired = types.ErrConfigRequired

	// ErrUnknownRule is returned for a rule name outside the vocabulary.
	ErrUnknownRule = types.ErrUnknownRule

	// ErrInvalidDate is returned for a date not in YYYY-MM-DD form.
	ErrInvalidDate = types.ErrInvalidDate

	// ErrInvalidWeekday is returned for an unknown weekday name.
	ErrInvalidWeekday = types.ErrInvalidWeekday

	// ErrNoSchedule is returned when an edit is requested before a schedule exists.
	ErrNoSchedule = types.ErrNoSchedule

	// ErrSlotNotFound is returned when a slot has no assignment.
	ErrSlotNotFound = types.ErrSlotNotFound
)
