package roster

import (
	"github.com/Thomblin/duty-roster/ledger"
	"github.com/Thomblin/duty-roster/types"
)

// Schedule is the result of one engine run.
//
// Assignments and People stay consistent under Swap: the ledger of every
// person matches the assignments naming it, except for the last service
// date which Swap does not recompute.
type Schedule struct {
	// RunID identifies the run in logs.
	RunID string

	// Seed reproduces the run's shuffle when passed to WithSeed.
	Seed uint64

	// Assignments in creation order (date, then configured place order).
	Assignments []types.Assignment

	// People in configuration order with their final ledgers.
	People []*ledger.Person

	// Unfilled lists the slots that had no candidate.
	Unfilled []types.Slot

	metrics MetricsCollector
}

// Person returns the person with the given name.
func (s *Schedule) Person(name string) (*ledger.Person, bool) {
	for _, p := range s.People {
		if p.Name() == name {
			return p, true
		}
	}

	return nil, false
}

// Find returns the index of the assignment filling slot.
func (s *Schedule) Find(slot types.Slot) (int, bool) {
	for i, a := range s.Assignments {
		if a.Date == slot.Date && a.Place == slot.Place {
			return i, true
		}
	}

	return -1, false
}

// Swap exchanges the people assigned to slots a and b.
//
// Both slots must be filled and distinct; otherwise nothing changes and Swap
// returns false. When both people are known, their ledgers are updated in
// this order: first person leaves a, second leaves b, first joins b, second
// joins a. Group states are only touched by the two registrations.
//
// Parameters:
//   - a, b: Slots to swap
//
// Returns:
//   - bool: true if the assignments were swapped
func (s *Schedule) Swap(a, b types.Slot) bool {
	ok := s.swap(a, b)
	if s.metrics != nil {
		s.metrics.RecordSwap(ok)
	}

	return ok
}

func (s *Schedule) swap(a, b types.Slot) bool {
	if a == b {
		return false
	}

	i, foundA := s.Find(a)
	j, foundB := s.Find(b)
	if !foundA || !foundB {
		return false
	}

	first := s.Assignments[i].Person
	second := s.Assignments[j].Person
	s.Assignments[i].Person = second
	s.Assignments[j].Person = first

	p1, ok1 := s.Person(first)
	p2, ok2 := s.Person(second)
	if ok1 && ok2 {
		p1.UnregisterService(a.Date, a.Place)
		p2.UnregisterService(b.Date, b.Place)
		p1.RegisterService(b.Date, b.Place)
		p2.RegisterService(a.Date, a.Place)
	}

	return true
}

// Grid returns the date by place view of the current assignments.
func (s *Schedule) Grid() *Grid {
	return NewGrid(s.Assignments)
}
