package logging

// Interface is implemented by loggers passed to services.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Discard is a logger that discards all log records. Intended for tests.
var Discard Interface = discard{}

type discard struct{}

func (discard) Debug(msg string, args ...any) {}
func (discard) Info(msg string, args ...any)  {}
func (discard) Warn(msg string, args ...any)  {}
func (discard) Error(msg string, args ...any) {}
