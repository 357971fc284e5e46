package types

// Slot is one (date, place) cell of the roster that needs exactly one person.
type Slot struct {
	Date  Date   `json:"date"`
	Place string `json:"place"`
}

// Assignment records who serves a slot.
//
// The engine creates assignments once and never changes them afterwards;
// only the swap editor rewrites Person.
type Assignment struct {
	Date   Date   `json:"date"`
	Place  string `json:"place"`
	Person string `json:"person"`
}

// Slot returns the slot this assignment fills.
func (a Assignment) Slot() Slot {
	return Slot{Date: a.Date, Place: a.Place}
}
