package ledger

import (
	"maps"
	"math"
	"time"

	"github.com/Thomblin/duty-roster/types"
)

// Person is one schedulable individual and its fairness ledger.
//
// Invariant: TotalServices equals the sum of WeekdayCounts and the sum of
// PlaceCounts, and DifferentPlaceServices never exceeds TotalServices, as long
// as every UnregisterService call matches an earlier RegisterService call.
type Person struct {
	name      string
	homePlace string

	totalServices          int
	lastService            types.Date
	hasLastService         bool
	weekdayCounts          map[time.Weekday]int
	placeCounts            map[string]int
	differentPlaceServices int

	group *GroupState
}

// NewPerson creates a person with an empty ledger.
//
// Parameters:
//   - name: Unique display name, conventionally "<member> <group>"
//   - homePlace: Place of the person's group
//   - group: State shared with the other members of the same group; a fresh
//     GroupState is created when nil
//
// Returns:
//   - *Person: Person that has never served
func NewPerson(name, homePlace string, group *GroupState) *Person {
	if group == nil {
		group = NewGroupState()
	}

	return &Person{
		name:          name,
		homePlace:     homePlace,
		weekdayCounts: make(map[time.Weekday]int),
		placeCounts:   make(map[string]int),
		group:         group,
	}
}

// Name returns the person's display name.
func (p *Person) Name() string { return p.name }

// HomePlace returns the place of the person's group.
func (p *Person) HomePlace() string { return p.homePlace }

// TotalServices returns the number of registered services.
func (p *Person) TotalServices() int { return p.totalServices }

// DifferentPlaceServices returns the number of services away from the home place.
func (p *Person) DifferentPlaceServices() int { return p.differentPlaceServices }

// LastService returns the date of the last registered service, if any.
func (p *Person) LastService() (types.Date, bool) {
	return p.lastService, p.hasLastService
}

// WeekdayCounts returns a copy of the services per weekday. Weekdays without
// services are absent.
func (p *Person) WeekdayCounts() map[time.Weekday]int {
	return maps.Clone(p.weekdayCounts)
}

// WeekdayCount returns the number of services on wd.
func (p *Person) WeekdayCount(wd time.Weekday) int {
	return p.weekdayCounts[wd]
}

// PlaceCounts returns a copy of the services per place. Places without
// services are absent.
func (p *Person) PlaceCounts() map[string]int {
	return maps.Clone(p.placeCounts)
}

// Group returns the shared group state.
func (p *Person) Group() *GroupState { return p.group }

// RegisterService records a service at place on date.
//
// The group's last service date is overwritten unconditionally.
func (p *Person) RegisterService(date types.Date, place string) {
	p.totalServices++
	p.lastService = date
	p.hasLastService = true
	p.weekdayCounts[date.Weekday()]++
	p.placeCounts[place]++
	p.group.record(date)

	if place != p.homePlace {
		p.differentPlaceServices++
	}
}

// UnregisterService reverses the ledger effects of RegisterService.
//
// Counters never drop below zero and map entries reaching zero are removed.
// The last service date is cleared only when it equals date; no earlier date
// is recovered. The group state is left untouched.
func (p *Person) UnregisterService(date types.Date, place string) {
	if p.totalServices > 0 {
		p.totalServices--
	}

	if p.hasLastService && p.lastService == date {
		p.lastService = types.Date{}
		p.hasLastService = false
	}

	decrement(p.weekdayCounts, date.Weekday())
	decrement(p.placeCounts, place)

	if place != p.homePlace && p.differentPlaceServices > 0 {
		p.differentPlaceServices--
	}
}

func decrement[K comparable](m map[K]int, key K) {
	n, ok := m[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(m, key)
		return
	}
	m[key] = n - 1
}

// SortKey computes the rank key of this person for the slot (date, place).
//
// The key holds one value per rule in rule order; smaller keys rank first.
// Rules that have never been satisfied (no service yet) produce math.MinInt64
// so the person is preferred.
func (p *Person) SortKey(date types.Date, place string, rules []types.Rule) types.SortKey {
	key := make(types.SortKey, 0, len(rules))
	for _, rule := range rules {
		key = append(key, p.ruleValue(date, place, rule))
	}

	return key
}

func (p *Person) ruleValue(date types.Date, place string, rule types.Rule) int64 {
	switch rule {
	case types.RuleLeastServices:
		return int64(p.totalServices)

	case types.RuleOwnPlace:
		if place == p.homePlace {
			return 0
		}
		return 1

	case types.RuleDifferentPlaceServices:
		if place != p.homePlace {
			return int64(p.differentPlaceServices)
		}
		return math.MinInt64 / int64(max(p.differentPlaceServices, 1))

	case types.RuleLastService:
		if !p.hasLastService {
			return math.MinInt64
		}
		return p.lastService.DaysFromCE() / 7

	case types.RuleLessServicesAtSameWeekday:
		return int64(p.weekdayCounts[date.Weekday()])

	case types.RuleMaxDistanceInGroup:
		last, ok := p.group.LastService()
		if !ok {
			return math.MinInt64
		}
		return last.DaysFromCE()

	default:
		// Filter rules do not rank.
		return 0
	}
}

// Clone returns a copy with independent ledger maps that still shares the
// GroupState of p.
func (p *Person) Clone() *Person {
	c := *p
	c.weekdayCounts = maps.Clone(p.weekdayCounts)
	c.placeCounts = maps.Clone(p.placeCounts)

	return &c
}
