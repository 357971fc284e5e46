package export

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Thomblin/duty-roster/ledger"
	"github.com/Thomblin/duty-roster/types"
)

// WeekdayCount is the number of services on one weekday.
type WeekdayCount struct {
	Weekday types.Weekday `json:"weekday"`
	Count   int           `json:"count"`
}

// PlaceCount is the number of services at one place.
type PlaceCount struct {
	Place string `json:"place"`
	Count int    `json:"count"`
}

// Summary is the workload of one person.
type Summary struct {
	Name           string         `json:"name"`
	HomePlace      string         `json:"homePlace"`
	Total          int            `json:"total"`
	Weekdays       []WeekdayCount `json:"weekdays"`
	Places         []PlaceCount   `json:"places"`
	DifferentPlace int            `json:"differentPlace"`
}

// Summaries returns one summary per person, in the given order.
//
// Weekdays are listed Monday first and places by name; entries without
// services are omitted.
func Summaries(people []*ledger.Person) []Summary {
	out := make([]Summary, 0, len(people))
	for _, p := range people {
		s := Summary{
			Name:           p.Name(),
			HomePlace:      p.HomePlace(),
			Total:          p.TotalServices(),
			Weekdays:       []WeekdayCount{},
			Places:         []PlaceCount{},
			DifferentPlace: p.DifferentPlaceServices(),
		}

		for _, wd := range types.WeekOrder {
			if n := p.WeekdayCount(wd); n > 0 {
				s.Weekdays = append(s.Weekdays, WeekdayCount{Weekday: types.Weekday(wd), Count: n})
			}
		}

		for place, n := range p.PlaceCounts() {
			s.Places = append(s.Places, PlaceCount{Place: place, Count: n})
		}
		slices.SortFunc(s.Places, func(a, b PlaceCount) int {
			return strings.Compare(a.Place, b.Place)
		})

		out = append(out, s)
	}

	return out
}

// String renders the summary line without trailing newline, e.g.
// "Alice Maier, total: 3, Mon: 2, Wed: 1, different_place: 0".
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, total: %d", s.Name, s.Total)
	for _, wc := range s.Weekdays {
		fmt.Fprintf(&sb, ", %s: %d", wc.Weekday, wc.Count)
	}
	fmt.Fprintf(&sb, ", different_place: %d", s.DifferentPlace)

	return sb.String()
}

// WriteSummary writes one summary line per person.
func WriteSummary(w io.Writer, people []*ledger.Person) error {
	for _, s := range Summaries(people) {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}

	return nil
}
