package types

import (
	"fmt"
	"slices"
	"strings"
)

// Rule is one entry of the closed ranking/filtering vocabulary.
//
// Sort rules each contribute one integer to a candidate's rank key. Filter
// rules restrict the candidate set before ranking. FilterSamePlace is the only
// filter rule; listing it among the sort rules contributes a constant 0.
type Rule int

const (
	// RuleLeastServices prefers people with fewer services overall.
	RuleLeastServices Rule = iota + 1

	// RuleLessServicesAtSameWeekday prefers people with fewer services on the slot's weekday.
	RuleLessServicesAtSameWeekday

	// RuleLastService prefers people whose last service is further back (weekly granularity).
	RuleLastService

	// RuleMaxDistanceInGroup prefers people whose group served the longest time ago.
	RuleMaxDistanceInGroup

	// RuleOwnPlace prefers people whose home place is the slot's place.
	RuleOwnPlace

	// RuleDifferentPlaceServices prefers people with fewer services away from home,
	// and strongly prefers anyone whose home place is the slot's place.
	RuleDifferentPlaceServices

	// RuleFilterSamePlace restricts candidates to people whose home place is the slot's place.
	RuleFilterSamePlace
)

var ruleNames = map[Rule]string{
	RuleLeastServices:             "sortByLeastServices",
	RuleLessServicesAtSameWeekday: "sortByLessServicesAtSameWeekday",
	RuleLastService:               "sortByLastService",
	RuleMaxDistanceInGroup:        "sortByMaxDistanceInGroup",
	RuleOwnPlace:                  "sortByOwnPlace",
	RuleDifferentPlaceServices:    "sortByDifferentPlaceServices",
	RuleFilterSamePlace:           "filterSamePlace",
}

// AllRules lists every known rule in declaration order.
func AllRules() []Rule {
	return []Rule{
		RuleLeastServices,
		RuleLessServicesAtSameWeekday,
		RuleLastService,
		RuleMaxDistanceInGroup,
		RuleOwnPlace,
		RuleDifferentPlaceServices,
		RuleFilterSamePlace,
	}
}

// String returns the configuration name of the rule.
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}

	return "unknown"
}

// IsFilter reports whether the rule restricts candidates instead of ranking them.
func (r Rule) IsFilter() bool {
	return r == RuleFilterSamePlace
}

// ParseRule resolves a configuration name to a Rule.
//
// Both the prefixed form ("sortByLeastServices", "filterSamePlace") and the
// bare form ("LeastServices", "FilterSamePlace") are accepted, ignoring case.
func ParseRule(s string) (Rule, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, r := range AllRules() {
		name := strings.ToLower(r.String())
		if want == name || "sortby"+want == name {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if _, ok := ruleNames[r]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// Rules is the ordered rule configuration consumed by the engine.
type Rules struct {
	// Sort is applied in order; earlier rules dominate later ones.
	Sort []Rule `yaml:"sort" json:"sort"`

	// Filter restricts the candidate set before ranking.
	Filter []Rule `yaml:"filter" json:"filter"`
}

// Filters reports whether rule is part of the filter list.
func (r Rules) Filters(rule Rule) bool {
	return slices.Contains(r.Filter, rule)
}
