package observability

import "context"

type noopLogger struct{}

// NewNoOpLogger returns a logger that discards everything. It is the default
// until a real logger is wired.
func NewNoOpLogger() StructuredLogger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...map[string]any) {}
func (noopLogger) Info(string, ...map[string]any)  {}
func (noopLogger) Warn(string, ...map[string]any)  {}
func (noopLogger) Error(string, ...map[string]any) {}

func (n noopLogger) WithField(string, any) StructuredLogger     { return n }
func (n noopLogger) WithFields(map[string]any) StructuredLogger { return n }
func (n noopLogger) WithRequestID(string) StructuredLogger      { return n }

func (noopLogger) Flush(context.Context) error { return nil }
