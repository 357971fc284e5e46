package types

// Logger defines methods for structured logging.
//
// Compatible with slog-style and zap.SugaredLogger-style loggers: every method
// takes a message followed by alternating keys and values.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level.
	Error(msg string, keysAndValues ...any)
}
