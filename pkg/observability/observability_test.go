package observability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeFields_LaterMapsWin(t *testing.T) {
	t.Parallel()

	out := MergeFields(map[string]any{"a": 1, "b": 1}, []map[string]any{
		{"b": 2},
		{"c": 3},
	})
	require.Equal(t, map[string]any{"a": 1, "b": 2, "c": 3}, out)
}

func TestTestLogger_CapturesDerivedContext(t *testing.T) {
	t.Parallel()

	logger := NewTestLogger()
	derived := logger.WithRequestID("req_1").WithField("record", "home.example.com")

	derived.Info("record updated", map[string]any{"ip": "203.0.113.42"})
	derived.Error("record upsert failed")

	entries := logger.Entries()
	require.Len(t, entries, 2)

	require.Equal(t, "info", entries[0].Level)
	require.Equal(t, "req_1", entries[0].RequestID)
	require.Equal(t, "home.example.com", entries[0].Fields["record"])
	require.Equal(t, "203.0.113.42", entries[0].Fields["ip"])

	require.Equal(t, "error", entries[1].Level)
}

func TestNoOpLogger_IsSafe(t *testing.T) {
	t.Parallel()

	logger := NewNoOpLogger()
	logger.WithRequestID("req_1").WithField("k", "v").Info("ignored")
	require.NoError(t, logger.Flush(t.Context()))
}
