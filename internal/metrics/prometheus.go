package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Thomblin/duty-roster/types"
)

// DefaultNamespace is the metric namespace used when none is given.
const DefaultNamespace = "duty_roster"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered on first use, so constructing a
// PrometheusCollector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runs          prometheus.Counter
	runDuration   prometheus.Histogram
	scheduledDays prometheus.Gauge
	assignments   *prometheus.CounterVec
	unfilled      *prometheus.CounterVec
	swaps         *prometheus.CounterVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to DefaultNamespace if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runs = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "runs_total",
			Help:      "Total number of generated schedules.",
		})

		p.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Time taken to generate a schedule in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		})

		p.scheduledDays = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "scheduled_dates",
			Help:      "Number of dates scheduled by the last run.",
		})

		p.assignments = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assignments_total",
			Help:      "Total filled slots by place.",
		}, []string{"place"})

		p.unfilled = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "unfilled_slots_total",
			Help:      "Total slots left empty for lack of candidates by place.",
		}, []string{"place"})

		p.swaps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "editor",
			Name:      "swaps_total",
			Help:      "Total swap requests by result (applied, rejected).",
		}, []string{"result"})

		p.reg.MustRegister(p.runs)
		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.scheduledDays)
		p.reg.MustRegister(p.assignments)
		p.reg.MustRegister(p.unfilled)
		p.reg.MustRegister(p.swaps)
	})
}

// RecordRun counts a run and observes its duration.
func (p *PrometheusCollector) RecordRun(duration float64, dates int) {
	p.ensureRegistered()
	p.runs.Inc()
	p.runDuration.Observe(duration)
	p.scheduledDays.Set(float64(dates))
}

// RecordAssignment counts a filled slot.
func (p *PrometheusCollector) RecordAssignment(place string) {
	p.ensureRegistered()
	p.assignments.WithLabelValues(place).Inc()
}

// RecordUnfilledSlot counts a slot without candidates.
func (p *PrometheusCollector) RecordUnfilledSlot(place string) {
	p.ensureRegistered()
	p.unfilled.WithLabelValues(place).Inc()
}

// RecordSwap counts a swap request by outcome.
func (p *PrometheusCollector) RecordSwap(success bool) {
	p.ensureRegistered()
	if success {
		p.swaps.WithLabelValues("applied").Inc()
	} else {
		p.swaps.WithLabelValues("rejected").Inc()
	}
}

// WriteTextfile writes everything g gathers to path in the Prometheus text
// format, for pickup by the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile %q: %w", path, err)
	}

	return nil
}
