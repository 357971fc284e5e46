package roster

import (
	"slices"

	"github.com/Thomblin/duty-roster/types"
)

// Grid is a table view of assignments: one row per date (ascending), one
// column per place (sorted by name).
//
// A Grid is a snapshot; it does not follow later swaps.
type Grid struct {
	dates  []types.Date
	places []string
	cells  map[types.Slot]string
}

// NewGrid indexes assignments by slot. When a slot appears more than once
// the last assignment wins.
func NewGrid(assignments []types.Assignment) *Grid {
	g := &Grid{cells: make(map[types.Slot]string, len(assignments))}
	seenDates := make(map[types.Date]struct{})
	seenPlaces := make(map[string]struct{})

	for _, a := range assignments {
		if _, ok := seenDates[a.Date]; !ok {
			seenDates[a.Date] = struct{}{}
			g.dates = append(g.dates, a.Date)
		}
		if _, ok := seenPlaces[a.Place]; !ok {
			seenPlaces[a.Place] = struct{}{}
			g.places = append(g.places, a.Place)
		}
		g.cells[a.Slot()] = a.Person
	}

	slices.SortFunc(g.dates, types.Date.Compare)
	slices.Sort(g.places)

	return g
}

// Dates returns the row dates in ascending order.
func (g *Grid) Dates() []types.Date {
	return slices.Clone(g.dates)
}

// Places returns the column places in sorted order.
func (g *Grid) Places() []string {
	return slices.Clone(g.places)
}

// Person returns who serves at place on date.
func (g *Grid) Person(date types.Date, place string) (string, bool) {
	name, ok := g.cells[types.Slot{Date: date, Place: place}]
	return name, ok
}

// At returns the assignment in the given row and column (both 0-based).
// ok is false when the cell is out of range or empty.
func (g *Grid) At(row, col int) (types.Assignment, bool) {
	if row < 0 || row >= len(g.dates) || col < 0 || col >= len(g.places) {
		return types.Assignment{}, false
	}

	date, place := g.dates[row], g.places[col]
	name, ok := g.cells[types.Slot{Date: date, Place: place}]
	if !ok {
		return types.Assignment{}, false
	}

	return types.Assignment{Date: date, Place: place, Person: name}, true
}

// Rows returns one row per date: the date in YYYY-MM-DD form followed by
// the person of every place column, or "" for an empty cell.
func (g *Grid) Rows() [][]string {
	rows := make([][]string, 0, len(g.dates))
	for _, date := range g.dates {
		row := make([]string, 0, len(g.places)+1)
		row = append(row, date.String())
		for _, place := range g.places {
			row = append(row, g.cells[types.Slot{Date: date, Place: place}])
		}
		rows = append(rows, row)
	}

	return rows
}
