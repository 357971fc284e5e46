package roster

import "github.com/Thomblin/duty-roster/types"

// Re-export types from the types package.
//
// Internal packages depend on types instead of the root package, which keeps
// them free of import cycles while callers can still write roster.Date,
// roster.Rule and so on.
type (
	Date       = types.Date
	Weekday    = types.Weekday
	Rule       = types.Rule
	Rules      = types.Rules
	SortKey    = types.SortKey
	Slot       = types.Slot
	Assignment = types.Assignment
)

// Re-export interfaces from the types package for convenience.
type (
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export the rule vocabulary.
const (
	RuleLeastServices             = types.RuleLeastServices
	RuleLessServicesAtSameWeekday = types.RuleLessServicesAtSameWeekday
	RuleLastService               = types.RuleLastService
	RuleMaxDistanceInGroup        = types.RuleMaxDistanceInGroup
	RuleOwnPlace                  = types.RuleOwnPlace
	RuleDifferentPlaceServices    = types.RuleDifferentPlaceServices
	RuleFilterSamePlace           = types.RuleFilterSamePlace
)
