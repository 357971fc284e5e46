package testing

import (
	"slices"
	"testing"

	"github.com/Thomblin/duty-roster/ledger"
	"github.com/Thomblin/duty-roster/types"
)

// AssertConservation checks that the ledgers add up to the assignments.
//
// For every person, the total, the per-weekday counts and the per-place
// counts must equal what the assignments naming that person imply, and the
// totals over all people must equal the number of assignments.
//
// Parameters:
//   - t: Testing context
//   - assignments: Assignments of a run
//   - people: Person ledgers of the same run
func AssertConservation(t testing.TB, assignments []types.Assignment, people []*ledger.Person) {
	t.Helper()

	total, weekdayTotal, placeTotal := 0, 0, 0
	for _, p := range people {
		total += p.TotalServices()
		for _, n := range p.WeekdayCounts() {
			weekdayTotal += n
		}
		for _, n := range p.PlaceCounts() {
			placeTotal += n
		}
	}

	if total != len(assignments) {
		t.Errorf("sum of total services = %d, want %d", total, len(assignments))
	}
	if weekdayTotal != len(assignments) {
		t.Errorf("sum of weekday counts = %d, want %d", weekdayTotal, len(assignments))
	}
	if placeTotal != len(assignments) {
		t.Errorf("sum of place counts = %d, want %d", placeTotal, len(assignments))
	}

	for _, p := range people {
		wantPlaces := make(map[string]int)
		wantAway := 0
		for _, a := range assignments {
			if a.Person != p.Name() {
				continue
			}
			wantPlaces[a.Place]++
			if a.Place != p.HomePlace() {
				wantAway++
			}
		}

		got := p.PlaceCounts()
		for place, n := range wantPlaces {
			if got[place] != n {
				t.Errorf("%s: services at %q = %d, want %d", p.Name(), place, got[place], n)
			}
		}
		if p.DifferentPlaceServices() != wantAway {
			t.Errorf("%s: different place services = %d, want %d", p.Name(), p.DifferentPlaceServices(), wantAway)
		}
	}
}

// AssertNoExceptionDates checks that no assignment falls on an exception date.
func AssertNoExceptionDates(t testing.TB, assignments []types.Assignment, exceptions []types.Date) {
	t.Helper()

	for _, a := range assignments {
		if slices.Contains(exceptions, a.Date) {
			t.Errorf("%s at %q assigned on exception date %s", a.Person, a.Place, a.Date)
		}
	}
}

// AssertHomePlaces checks that every assignment is at the home place of the
// assigned person, as filterSamePlace guarantees.
func AssertHomePlaces(t testing.TB, assignments []types.Assignment, people []*ledger.Person) {
	t.Helper()

	home := make(map[string]string, len(people))
	for _, p := range people {
		home[p.Name()] = p.HomePlace()
	}

	for _, a := range assignments {
		place, ok := home[a.Person]
		if !ok {
			t.Errorf("assignment on %s names unknown person %q", a.Date, a.Person)
			continue
		}
		if place != a.Place {
			t.Errorf("%s (home %q) assigned to %q on %s", a.Person, place, a.Place, a.Date)
		}
	}
}
