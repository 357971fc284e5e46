package types

import "errors"

// Sentinel errors for the duty-roster library.
//
// Callers match them with errors.Is; components wrap them with context using
// fmt.Errorf("%w: ...", ErrX) or fmt.Errorf("...: %w", err).

// Configuration errors.
var (
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigRequired is returned when a nil configuration is passed to the engine.
	ErrConfigRequired = errors.New("configuration is required")

	// ErrUnknownRule is returned when a rule name is not part of the vocabulary.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidWeekday is returned when a weekday name cannot be parsed.
	ErrInvalidWeekday = errors.New("invalid weekday")
)

// Editing errors, used by collaborators that edit a generated schedule.
var (
	// ErrNoSchedule is returned when an edit is requested before a schedule exists.
	ErrNoSchedule = errors.New("no schedule generated")

	// ErrSlotNotFound is returned when a slot has no assignment in the schedule.
	ErrSlotNotFound = errors.New("slot not found")
)
