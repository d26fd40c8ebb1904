package observability

import (
	"context"
	"time"
)

// LogEntry is the structured record handed to error notifiers.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// ErrorNotifier receives error-level entries, e.g. to publish them to an
// alerting topic.
type ErrorNotifier interface {
	Notify(ctx context.Context, entry LogEntry) error
}

// StructuredLogger is the logging surface used throughout dnstheory.
//
// Implementations must never be handed the shared auth token; callers are
// responsible for keeping secrets out of messages and fields.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger
	WithRequestID(requestID string) StructuredLogger

	Flush(ctx context.Context) error
}

// MergeFields flattens variadic field maps into one map, later maps winning.
// Implementations share it so field precedence stays consistent.
func MergeFields(base map[string]any, fields []map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range base {
		out[k] = v
	}
	for _, m := range fields {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
