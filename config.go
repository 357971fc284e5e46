package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Thomblin/duty-roster/types"
)

// DateConfig selects the dates that need a roster.
type DateConfig struct {
	// From is the first date of the roster (inclusive).
	From types.Date `yaml:"from"`

	// To is the last date of the roster (inclusive).
	To types.Date `yaml:"to"`

	// Exceptions are dates inside the range that are never scheduled.
	Exceptions []types.Date `yaml:"exceptions"`

	// Weekdays restricts the range to these days of the week.
	// Default: Monday to Friday
	Weekdays []types.Weekday `yaml:"weekdays"`
}

// MemberConfig is one member of a group.
type MemberConfig struct {
	Name string `yaml:"name"`
}

// GroupConfig is a set of people sharing a home place and the
// MaxDistanceInGroup bookkeeping.
type GroupConfig struct {
	// Name is appended to each member name to form the person name.
	Name string `yaml:"name"`

	// Place is the home place of every member. Must be listed in Config.Places.
	Place string `yaml:"place"`

	Members []MemberConfig `yaml:"members"`
}

// RandomConfig controls the per-date shuffle.
type RandomConfig struct {
	// Seed makes a run reproducible. 0 means derive it from SeedPhrase, or
	// draw a fresh one when SeedPhrase is empty.
	Seed uint64 `yaml:"seed"`

	// SeedPhrase is hashed to a seed when Seed is 0.
	SeedPhrase string `yaml:"seedPhrase"`
}

// Config is the roster configuration.
//
// Example YAML:
//
//	dates:
//	  from: 2025-01-01
//	  to: 2025-12-31
//	  exceptions: [2025-12-24]
//	  weekdays: [Mon, Wed]
//	places: [Place A, Place B]
//	groups:
//	  - name: Maier
//	    place: Place A
//	    members: [{name: Alice}, {name: Bob}]
//	rules:
//	  sort: [sortByLeastServices, sortByOwnPlace]
//	  filter: [filterSamePlace]
type Config struct {
	Dates DateConfig `yaml:"dates"`

	// Places are filled in this order on every date.
	Places []string `yaml:"places"`

	Groups []GroupConfig `yaml:"groups"`

	// Rules rank and filter the candidates of each slot.
	// Default: sort by least services, no filter
	Rules types.Rules `yaml:"rules"`

	Random RandomConfig `yaml:"random"`
}

// DefaultConfig returns a Config with default weekdays and rules and no
// dates, places or groups.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Dates: DateConfig{
			Weekdays: []types.Weekday{
				types.Weekday(time.Monday),
				types.Weekday(time.Tuesday),
				types.Weekday(time.Wednesday),
				types.Weekday(time.Thursday),
				types.Weekday(time.Friday),
			},
		},
		Rules: types.Rules{
			Sort:   []types.Rule{types.RuleLeastServices},
			Filter: []types.Rule{},
		},
	}
}

// SetDefaults fills in missing configuration values.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if len(cfg.Dates.Weekdays) == 0 {
		cfg.Dates.Weekdays = defaults.Dates.Weekdays
	}
	if len(cfg.Rules.Sort) == 0 {
		cfg.Rules.Sort = defaults.Rules.Sort
	}
	if cfg.Rules.Filter == nil {
		cfg.Rules.Filter = defaults.Rules.Filter
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - dates.from and dates.to are set and from <= to
//   - weekdays are unique
//   - at least one place, no duplicates
//   - every group has a name and a place listed in places
//   - person names ("<member> <group>") are unique and members are named
//   - the filter list holds filter rules only
//
// Returns:
//   - error: Wraps ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Dates.From.IsZero() || cfg.Dates.To.IsZero() {
		return fmt.Errorf("%w: dates.from and dates.to are required", types.ErrInvalidConfig)
	}
	if cfg.Dates.From.After(cfg.Dates.To) {
		return fmt.Errorf("%w: dates.from (%s) must not be after dates.to (%s)",
			types.ErrInvalidConfig, cfg.Dates.From, cfg.Dates.To)
	}

	for i, wd := range cfg.Dates.Weekdays {
		if slices.Contains(cfg.Dates.Weekdays[:i], wd) {
			return fmt.Errorf("%w: duplicate weekday %s", types.ErrInvalidConfig, wd)
		}
	}

	if len(cfg.Places) == 0 {
		return fmt.Errorf("%w: at least one place is required", types.ErrInvalidConfig)
	}
	for i, place := range cfg.Places {
		if place == "" {
			return fmt.Errorf("%w: place %d has no name", types.ErrInvalidConfig, i)
		}
		if slices.Contains(cfg.Places[:i], place) {
			return fmt.Errorf("%w: duplicate place %q", types.ErrInvalidConfig, place)
		}
	}

	names := make(map[string]struct{})
	for i, group := range cfg.Groups {
		if group.Name == "" {
			return fmt.Errorf("%w: group %d has no name", types.ErrInvalidConfig, i)
		}
		if !slices.Contains(cfg.Places, group.Place) {
			return fmt.Errorf("%w: group %q refers to unknown place %q",
				types.ErrInvalidConfig, group.Name, group.Place)
		}
		for _, member := range group.Members {
			if member.Name == "" {
				return fmt.Errorf("%w: group %q has a member without name", types.ErrInvalidConfig, group.Name)
			}
			name := PersonName(member.Name, group.Name)
			if _, ok := names[name]; ok {
				return fmt.Errorf("%w: duplicate person %q", types.ErrInvalidConfig, name)
			}
			names[name] = struct{}{}
		}
	}

	for _, rule := range cfg.Rules.Filter {
		if !rule.IsFilter() {
			return fmt.Errorf("%w: %s is not a filter rule", types.ErrInvalidConfig, rule)
		}
	}

	return nil
}

// ValidateWithWarnings logs configuration that is valid but likely not what
// the operator meant.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	filterSamePlace := cfg.Rules.Filters(types.RuleFilterSamePlace)
	for _, place := range cfg.Places {
		homed := slices.ContainsFunc(cfg.Groups, func(g GroupConfig) bool {
			return g.Place == place && len(g.Members) > 0
		})
		if filterSamePlace && !homed {
			logger.Warn("place has no home members while filterSamePlace is set, its slots stay empty",
				"place", place)
		}
	}

	for _, group := range cfg.Groups {
		if len(group.Members) == 0 {
			logger.Warn("group has no members", "group", group.Name)
		}
	}

	for _, d := range cfg.Dates.Exceptions {
		if d.Before(cfg.Dates.From) || d.After(cfg.Dates.To) {
			logger.Warn("exception date outside of the roster range",
				"date", d, "from", cfg.Dates.From, "to", cfg.Dates.To)
		}
	}

	for _, rule := range cfg.Rules.Sort {
		if rule.IsFilter() {
			logger.Warn("filter rule listed as sort rule has no effect", "rule", rule)
		}
	}
}

// WeekdayList returns the configured weekdays as time.Weekday values.
func (cfg *Config) WeekdayList() []time.Weekday {
	out := make([]time.Weekday, len(cfg.Dates.Weekdays))
	for i, wd := range cfg.Dates.Weekdays {
		out[i] = wd.Std()
	}

	return out
}

// IsException reports whether d is one of the exception dates.
func (cfg *Config) IsException(d types.Date) bool {
	return slices.Contains(cfg.Dates.Exceptions, d)
}

// PersonName returns the name of a group member as used in schedules.
func PersonName(member, group string) string {
	return member + " " + group
}

// ParseConfig decodes a YAML configuration, applies defaults and validates it.
//
// Unknown keys are rejected so that misspelled options do not go unnoticed.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
//
// Parameters:
//   - path: Configuration file path
//
// Returns:
//   - *Config: Validated configuration with defaults applied
//   - error: Read, parse or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}

	return cfg, nil
}

// TestConfig returns a small valid configuration for tests and examples.
//
// Two places, "Place A" homing the Maier group (Alice, Bob) and "Place B"
// homing the Doe group (Charlie), scheduled on Mondays and Wednesdays of 2025
// except 2025-02-10 and 2025-12-24.
//
// Returns:
//   - Config: Valid configuration
func TestConfig() Config {
	return Config{
		Dates: DateConfig{
			From:       types.NewDate(2025, 1, 1),
			To:         types.NewDate(2025, 12, 31),
			Exceptions: []types.Date{types.NewDate(2025, 2, 10), types.NewDate(2025, 12, 24)},
			Weekdays:   []types.Weekday{types.Weekday(time.Monday), types.Weekday(time.Wednesday)},
		},
		Places: []string{"Place A", "Place B"},
		Groups: []GroupConfig{
			{
				Name:    "Maier",
				Place:   "Place A",
				Members: []MemberConfig{{Name: "Alice"}, {Name: "Bob"}},
			},
			{
				Name:    "Doe",
				Place:   "Place B",
				Members: []MemberConfig{{Name: "Charlie"}},
			},
		},
		Rules: types.Rules{
			Sort:   []types.Rule{types.RuleLeastServices, types.RuleOwnPlace},
			Filter: []types.Rule{},
		},
	}
}
