package roster

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Thomblin/duty-roster/calendar"
	"github.com/Thomblin/duty-roster/internal/logger"
	"github.com/Thomblin/duty-roster/internal/metrics"
	"github.com/Thomblin/duty-roster/internal/randutil"
	"github.com/Thomblin/duty-roster/ledger"
	"github.com/Thomblin/duty-roster/types"
)

// Scheduler is the assignment engine.
//
// It fills every (date, place) slot greedily: dates in the given order,
// places in configured order, and for each slot the candidate with the
// smallest rank key. Ties go to the candidate that comes first in the
// person list after the per-date shuffle. There is no backtracking; a slot
// without candidates stays empty.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	cfg      *Config
	logger   Logger
	metrics  MetricsCollector
	shuffler Shuffler
	seed     uint64
}

// NewScheduler creates an assignment engine for cfg.
//
// The configuration is used as given; callers that build it by hand should
// run SetDefaults and Validate first. LoadConfig does both.
//
// Parameters:
//   - cfg: Roster configuration (must not be nil)
//   - opts: Optional logger, metrics, shuffler or seed
//
// Returns:
//   - *Scheduler: Engine ready to Run
//   - error: ErrConfigRequired for a nil config, or a seed resolution error
//
// Example:
//
//	cfg, err := roster.LoadConfig("roster.yaml")
//	sched, err := roster.NewScheduler(cfg, roster.WithSeed(42))
//	schedule := sched.Run(dates)
func NewScheduler(cfg *Config, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	o := schedulerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	seed := o.seed
	if !o.hasSeed {
		var err error
		seed, err = randutil.Resolve(cfg.Random.Seed, cfg.Random.SeedPhrase)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve seed: %w", err)
		}
	}

	return &Scheduler{
		cfg:      cfg,
		logger:   o.logger,
		metrics:  o.metrics,
		shuffler: o.shuffler,
		seed:     seed,
	}, nil
}

// Seed returns the seed of the per-date shuffle.
func (s *Scheduler) Seed() uint64 {
	return s.seed
}

// Run builds a fresh set of people from the configuration and fills every
// slot of dates. Exception dates are skipped even when they are passed in.
//
// Parameters:
//   - dates: Dates to schedule, in scheduling order
//
// Returns:
//   - *Schedule: Assignments in creation order and the final person ledgers
func (s *Scheduler) Run(dates []types.Date) *Schedule {
	start := time.Now()
	runID := uuid.NewString()

	shuffler := s.shuffler
	if shuffler == nil {
		shuffler = randutil.New(s.seed)
	}

	people := NewPeople(s.cfg)
	order := make([]*ledger.Person, len(people))
	copy(order, people)

	filterSamePlace := s.cfg.Rules.Filters(types.RuleFilterSamePlace)
	schedule := &Schedule{
		RunID:   runID,
		Seed:    s.seed,
		People:  people,
		metrics: s.metrics,
	}

	s.logger.Info("generating schedule",
		"runID", runID,
		"seed", s.seed,
		"dates", len(dates),
		"places", len(s.cfg.Places),
		"people", len(people),
	)

	scheduled := 0
	for _, date := range dates {
		if s.cfg.IsException(date) {
			continue
		}
		scheduled++

		shuffler.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, place := range s.cfg.Places {
			chosen := pickCandidate(order, date, place, s.cfg.Rules.Sort, filterSamePlace)
			if chosen == nil {
				slot := types.Slot{Date: date, Place: place}
				schedule.Unfilled = append(schedule.Unfilled, slot)
				s.metrics.RecordUnfilledSlot(place)
				s.logger.Debug("no candidate for slot", "date", date, "place", place)

				continue
			}

			schedule.Assignments = append(schedule.Assignments, types.Assignment{
				Date:   date,
				Place:  place,
				Person: chosen.Name(),
			})
			chosen.RegisterService(date, place)
			s.metrics.RecordAssignment(place)
		}
	}

	elapsed := time.Since(start)
	s.metrics.RecordRun(elapsed.Seconds(), scheduled)
	s.logger.Info("schedule generated",
		"runID", runID,
		"dates", scheduled,
		"assignments", len(schedule.Assignments),
		"unfilled", len(schedule.Unfilled),
		"duration", elapsed,
	)

	return schedule
}

// pickCandidate returns the first person in order with the smallest rank key
// for the slot, or nil when no person qualifies.
func pickCandidate(order []*ledger.Person, date types.Date, place string, rules []types.Rule, filterSamePlace bool) *ledger.Person {
	var (
		best    *ledger.Person
		bestKey types.SortKey
	)

	for _, p := range order {
		if filterSamePlace && p.HomePlace() != place {
			continue
		}

		key := p.SortKey(date, place, rules)
		if best == nil || key.Less(bestKey) {
			best, bestKey = p, key
		}
	}

	return best
}

// NewPeople creates one person per group member, in configuration order.
//
// Members of one group share a GroupState; different groups never do.
func NewPeople(cfg *Config) []*ledger.Person {
	var people []*ledger.Person
	for _, group := range cfg.Groups {
		state := ledger.NewGroupState()
		for _, member := range group.Members {
			people = append(people, ledger.NewPerson(PersonName(member.Name, group.Name), group.Place, state))
		}
	}

	return people
}

// CreateSchedule runs the assignment engine once over dates.
//
// It is shorthand for NewScheduler followed by Run.
func CreateSchedule(dates []types.Date, cfg *Config, opts ...Option) (*Schedule, error) {
	sched, err := NewScheduler(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return sched.Run(dates), nil
}

// Generate schedules every working day of the configured date range.
//
// Working days are the configured weekdays between dates.from and dates.to,
// without the exception dates.
func Generate(cfg *Config, opts ...Option) (*Schedule, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	dates := calendar.WorkingDays(cfg.Dates.From, cfg.Dates.To, cfg.WeekdayList(), cfg.Dates.Exceptions)

	return CreateSchedule(dates, cfg, opts...)
}
