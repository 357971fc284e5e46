// Package metrics provides types.MetricsCollector implementations: a no-op
// collector used by default and a Prometheus-backed collector.
package metrics

import "github.com/Thomblin/duty-roster/types"

// NopMetrics implements a no-op metrics collector.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	sched, err := roster.NewScheduler(cfg, roster.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordRun discards the run metric.
func (n *NopMetrics) RecordRun(_ /* duration */ float64, _ /* dates */ int) {}

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* place */ string) {}

// RecordUnfilledSlot discards the unfilled slot metric.
func (n *NopMetrics) RecordUnfilledSlot(_ /* place */ string) {}

// RecordSwap discards the swap metric.
func (n *NopMetrics) RecordSwap(_ /* success */ bool) {}
