package dimstore

import "log/slog"

type options struct {
	logger *Logger
}

// Option configures a Store constructed via New or FromList.
//
// Breaking changes are expected while dimstore is pre-release.
type Option func(*options)

// WithLogger configures structured logging for Insert/Update operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dimstore.NewJSONLogger(slog.LevelInfo)
//	s := dimstore.New[Article](spec, dimstore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
