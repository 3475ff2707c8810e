package library

// Logger receives diagnostic messages from a Library. *slog.Logger satisfies it.
//
// Debug level: completed loans and returns
// Info level: loans rejected because the book is missing or on loan
// Warn level: loans created for a member ID that is not registered.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger. A nil logger keeps the library silent.
func WithLogger(logger Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
