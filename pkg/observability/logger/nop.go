package logger

// nopLogger discards every log entry. Useful as a default when callers
// do not supply a logger of their own.
type nopLogger struct{}

// NewNop returns a Logger that discards all log entries.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...any) {}

func (nopLogger) Info(string, ...any) {}

func (nopLogger) Warn(string, ...any) {}

func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }
