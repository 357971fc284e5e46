package roster

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Thomblin/duty-roster/types"
)

const testConfigYAML = `
dates:
  from: 2025-01-01
  to: 2025-12-31
  exceptions: [2025-02-10, 2025-12-24]
  weekdays: [Mon, Wed]
places: [Place A, Place B]
groups:
  - name: Maier
    place: Place A
    members:
      - name: Alice
      - name: Bob
  - name: Doe
    place: Place B
    members:
      - name: Charlie
rules:
  sort: [sortByLeastServices, sortByOwnPlace]
  filter: []
`

// recordingLogger keeps warnings for assertions.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) Error(string, ...any) {}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, []types.Weekday{
		types.Weekday(time.Monday),
		types.Weekday(time.Tuesday),
		types.Weekday(time.Wednesday),
		types.Weekday(time.Thursday),
		types.Weekday(time.Friday),
	}, cfg.Dates.Weekdays)
	require.Equal(t, []types.Rule{types.RuleLeastServices}, cfg.Rules.Sort)
	require.Empty(t, cfg.Rules.Filter)
	require.Empty(t, cfg.Places)
	require.Empty(t, cfg.Groups)
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Len(t, cfg.Dates.Weekdays, 5)
		require.Equal(t, []types.Rule{types.RuleLeastServices}, cfg.Rules.Sort)
		require.NotNil(t, cfg.Rules.Filter)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Rules.Filter = []types.Rule{types.RuleFilterSamePlace}
		SetDefaults(&cfg)

		require.Equal(t, TestConfig().Dates.Weekdays, cfg.Dates.Weekdays)
		require.Equal(t, []types.Rule{types.RuleLeastServices, types.RuleOwnPlace}, cfg.Rules.Sort)
		require.Equal(t, []types.Rule{types.RuleFilterSamePlace}, cfg.Rules.Filter)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts test config", func(t *testing.T) {
		cfg := TestConfig()
		require.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(cfg *Config)
		errMsg string
	}{
		{
			name:   "missing dates",
			mutate: func(cfg *Config) { cfg.Dates.From = types.Date{} },
			errMsg: "dates.from and dates.to are required",
		},
		{
			name: "from after to",
			mutate: func(cfg *Config) {
				cfg.Dates.From = types.NewDate(2026, 1, 1)
			},
			errMsg: "must not be after",
		},
		{
			name: "duplicate weekday",
			mutate: func(cfg *Config) {
				cfg.Dates.Weekdays = append(cfg.Dates.Weekdays, types.Weekday(time.Monday))
			},
			errMsg: "duplicate weekday Mon",
		},
		{
			name:   "no places",
			mutate: func(cfg *Config) { cfg.Places = nil },
			errMsg: "at least one place",
		},
		{
			name:   "duplicate place",
			mutate: func(cfg *Config) { cfg.Places = append(cfg.Places, "Place A") },
			errMsg: `duplicate place "Place A"`,
		},
		{
			name:   "unnamed place",
			mutate: func(cfg *Config) { cfg.Places = append(cfg.Places, "") },
			errMsg: "has no name",
		},
		{
			name:   "unknown group place",
			mutate: func(cfg *Config) { cfg.Groups[1].Place = "Place C" },
			errMsg: `unknown place "Place C"`,
		},
		{
			name:   "unnamed group",
			mutate: func(cfg *Config) { cfg.Groups[0].Name = "" },
			errMsg: "group 0 has no name",
		},
		{
			name: "unnamed member",
			mutate: func(cfg *Config) {
				cfg.Groups[0].Members = append(cfg.Groups[0].Members, MemberConfig{})
			},
			errMsg: "member without name",
		},
		{
			name: "duplicate person",
			mutate: func(cfg *Config) {
				cfg.Groups = append(cfg.Groups, GroupConfig{
					Name:    "Maier",
					Place:   "Place B",
					Members: []MemberConfig{{Name: "Bob"}},
				})
			},
			errMsg: `duplicate person "Bob Maier"`,
		},
		{
			name: "sort rule in filter list",
			mutate: func(cfg *Config) {
				cfg.Rules.Filter = []types.Rule{types.RuleOwnPlace}
			},
			errMsg: "sortByOwnPlace is not a filter rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := TestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, types.ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("clean config has no warnings", func(t *testing.T) {
		cfg := TestConfig()
		log := &recordingLogger{}

		cfg.ValidateWithWarnings(log)
		require.Empty(t, log.warnings)
	})

	t.Run("warns about suspicious values", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Places = append(cfg.Places, "Place C")
		cfg.Groups = append(cfg.Groups, GroupConfig{Name: "Empty", Place: "Place C"})
		cfg.Rules.Filter = []types.Rule{types.RuleFilterSamePlace}
		cfg.Rules.Sort = append(cfg.Rules.Sort, types.RuleFilterSamePlace)
		cfg.Dates.Exceptions = append(cfg.Dates.Exceptions, types.NewDate(2030, 1, 1))
		log := &recordingLogger{}

		cfg.ValidateWithWarnings(log)
		require.Len(t, log.warnings, 4)
	})
}

func TestConfig_Helpers(t *testing.T) {
	cfg := TestConfig()

	require.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, cfg.WeekdayList())
	require.True(t, cfg.IsException(types.NewDate(2025, 12, 24)))
	require.False(t, cfg.IsException(types.NewDate(2025, 12, 25)))
	require.Equal(t, "Alice Maier", PersonName("Alice", "Maier"))
}

func TestParseConfig(t *testing.T) {
	t.Run("parses full config", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(testConfigYAML))
		require.NoError(t, err)

		expected := TestConfig()
		require.Equal(t, &expected, cfg)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
dates: {from: 2025-09-01, to: 2025-09-30}
places: [A]
`))
		require.NoError(t, err)
		require.Len(t, cfg.Dates.Weekdays, 5)
		require.Equal(t, []types.Rule{types.RuleLeastServices}, cfg.Rules.Sort)
	})

	t.Run("reads random section", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
dates: {from: 2025-09-01, to: 2025-09-30}
places: [A]
random: {seed: 17, seedPhrase: autumn}
`))
		require.NoError(t, err)
		require.Equal(t, RandomConfig{Seed: 17, SeedPhrase: "autumn"}, cfg.Random)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := ParseConfig([]byte(`
dates: {from: 2025-09-01, to: 2025-09-30}
places: [A]
plces: [B]
`))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("rejects unknown rule", func(t *testing.T) {
		_, err := ParseConfig([]byte(`
dates: {from: 2025-09-01, to: 2025-09-30}
places: [A]
rules: {sort: [sortByLuck]}
`))
		require.ErrorIs(t, err, types.ErrUnknownRule)
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		_, err := ParseConfig([]byte(`
dates: {from: 2025-13-01, to: 2025-09-30}
places: [A]
`))
		require.ErrorIs(t, err, types.ErrInvalidDate)
	})

	t.Run("empty document fails validation", func(t *testing.T) {
		_, err := ParseConfig(nil)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, []string{"Place A", "Place B"}, cfg.Places)
	})

	t.Run("sample config", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join("testdata", "roster.yaml"))
		require.NoError(t, err)
		require.Equal(t, "roster 2025", cfg.Random.SeedPhrase)
		require.Len(t, cfg.Rules.Sort, 4)

		schedule, err := Generate(cfg)
		require.NoError(t, err)
		require.Len(t, schedule.Assignments, 103*2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file names path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("places: []\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
		require.Contains(t, err.Error(), path)
	})
}
