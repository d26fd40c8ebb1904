package zap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theory-cloud/dnstheory/pkg/observability"
)

func newObservedLogger(t *testing.T, options ...Option) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(ubzap.DebugLevel)
	options = append([]Option{WithZapLogger(ubzap.New(core))}, options...)
	logger, err := NewLogger("debug", options...)
	require.NoError(t, err)
	return logger, logs
}

func TestLogger_EmitsFieldsAndRequestID(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger(t)
	derived := logger.WithRequestID("req_1").WithField("record", "home.example.com")
	derived.Info("record updated", map[string]any{"ip": "203.0.113.42"})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "record updated", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "req_1", fields["request_id"])
	require.Equal(t, "home.example.com", fields["record"])
	require.Equal(t, "203.0.113.42", fields["ip"])
}

func TestLogger_UnsupportedLevelRejected(t *testing.T) {
	t.Parallel()

	_, err := NewLogger("verbose")
	require.Error(t, err)
}

type captureNotifier struct {
	entries []observability.LogEntry
	err     error
}

func (n *captureNotifier) Notify(_ context.Context, entry observability.LogEntry) error {
	n.entries = append(n.entries, entry)
	return n.err
}

func TestLogger_NotifiesOnErrorOnly(t *testing.T) {
	t.Parallel()

	notifier := &captureNotifier{}
	logger, _ := newObservedLogger(t, WithErrorNotifier(notifier))

	logger.Info("record updated")
	logger.Error("record upsert failed", map[string]any{"zone_id": "Z1234567890ABC"})

	require.Len(t, notifier.entries, 1)
	require.Equal(t, "record upsert failed", notifier.entries[0].Message)
	require.Equal(t, "Z1234567890ABC", notifier.entries[0].Fields["zone_id"])
}

func TestLogger_NotifierFailureDoesNotPanic(t *testing.T) {
	t.Parallel()

	notifier := &captureNotifier{err: errors.New("publish failed")}
	logger, logs := newObservedLogger(t, WithErrorNotifier(notifier))

	logger.Error("record upsert failed")

	// The failure is logged as a warning, not propagated.
	require.Len(t, logs.FilterMessage("error notification failed").All(), 1)
}
