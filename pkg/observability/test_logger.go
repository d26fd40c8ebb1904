package observability

import (
	"context"
	"sync"
	"time"
)

// TestLogger captures entries in memory for assertions. Derived loggers
// (WithField, WithRequestID) share the root entry slice.
type TestLogger struct {
	parent *TestLogger

	mu      sync.Mutex
	entries []LogEntry

	fields    map[string]any
	requestID string
}

var _ StructuredLogger = (*TestLogger)(nil)

func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

// Entries returns a copy of everything logged so far.
func (l *TestLogger) Entries() []LogEntry {
	root := l.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	return append([]LogEntry(nil), root.entries...)
}

func (l *TestLogger) root() *TestLogger {
	if l.parent != nil {
		return l.parent
	}
	return l
}

func (l *TestLogger) log(level, message string, fields []map[string]any) {
	root := l.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.entries = append(root.entries, LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    MergeFields(l.fields, fields),
		RequestID: l.requestID,
	})
}

func (l *TestLogger) Debug(message string, fields ...map[string]any) { l.log("debug", message, fields) }
func (l *TestLogger) Info(message string, fields ...map[string]any)  { l.log("info", message, fields) }
func (l *TestLogger) Warn(message string, fields ...map[string]any)  { l.log("warn", message, fields) }
func (l *TestLogger) Error(message string, fields ...map[string]any) { l.log("error", message, fields) }

func (l *TestLogger) WithField(key string, value any) StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *TestLogger) WithFields(fields map[string]any) StructuredLogger {
	return &TestLogger{
		parent:    l.root(),
		fields:    MergeFields(l.fields, []map[string]any{fields}),
		requestID: l.requestID,
	}
}

func (l *TestLogger) WithRequestID(requestID string) StructuredLogger {
	return &TestLogger{
		parent:    l.root(),
		fields:    MergeFields(l.fields, nil),
		requestID: requestID,
	}
}

func (l *TestLogger) Flush(context.Context) error { return nil }
