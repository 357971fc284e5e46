package roster

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	logger   Logger
	metrics  MetricsCollector
	shuffler Shuffler
	seed     uint64
	hasSeed  bool
}

// Shuffler reorders n elements by calling swap, like rand.Shuffle.
//
// *rand.Rand from math/rand/v2 satisfies Shuffler.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ShufflerFunc adapts a function to the Shuffler interface.
type ShufflerFunc func(n int, swap func(i, j int))

// Shuffle calls f(n, swap).
func (f ShufflerFunc) Shuffle(n int, swap func(i, j int)) {
	f(n, swap)
}

// NoShuffle keeps the configured person order on every date.
var NoShuffle Shuffler = ShufflerFunc(func(int, func(i, j int)) {})

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog and zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewScheduler
//
// Example:
//
//	sched, err := roster.NewScheduler(cfg, roster.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithShuffler replaces the seeded generator used for the per-date shuffle.
//
// The shuffler is used as is for every Run, so its state carries over between
// runs. Tests use it to pin the candidate order.
//
// Example:
//
//	sched, err := roster.NewScheduler(cfg, roster.WithShuffler(roster.NoShuffle))
func WithShuffler(shuffler Shuffler) Option {
	return func(o *schedulerOptions) {
		o.shuffler = shuffler
	}
}

// WithSeed overrides the seed from the configuration's random section.
//
// Every Run of the same Scheduler restarts from this seed, so runs over the
// same dates produce the same schedule.
func WithSeed(seed uint64) Option {
	return func(o *schedulerOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}
