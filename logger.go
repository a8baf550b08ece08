package dimstore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dimstore-specific context. This provides
// structured logging with consistent field names across Insert/Update.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output. This is the
// default for a Store constructed without WithLogger.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))}
}

// WithOid adds an oid field to the logger.
func (l *Logger) WithOid(oid uint64) *Logger {
	return &Logger{Logger: l.Logger.With("oid", oid)}
}

// logInsert logs a completed insert.
func (l *Logger) logInsert(oid uint64, arity int) {
	l.Debug("insert completed", "oid", oid, "arity", arity)
}

// logUpdateOutcome logs a single update-loop outcome.
func (l *Logger) logUpdateOutcome(oid uint64, outcome string) {
	l.Debug("update applied", "oid", oid, "outcome", outcome)
}
