// Package logging decouples the application from the underlying
// logging framework. Components take a Logger; logrus stays an
// implementation detail of the adapter.
package logging

// Field is a key-value pair attached to a structured log line.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface used across the
// application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger with an error field attached.
	WithError(err error) Logger
	// WithField returns a derived logger with one field attached.
	WithField(key string, value interface{}) Logger
	// WithFields returns a derived logger with several fields attached.
	WithFields(fields ...Field) Logger
}
