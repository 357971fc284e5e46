// Package logger provides the built-in loggers of the duty roster: a no-op
// logger used when the caller does not configure one, and a testing.T logger.
package logger

import "github.com/Thomblin/duty-roster/types"

// NopLogger discards every message.
//
// It is the default logger of the scheduler and the HTTP API.
//
// Example:
//
//	sched, err := roster.NewScheduler(cfg, roster.WithLogger(logger.NewNop()))
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}
