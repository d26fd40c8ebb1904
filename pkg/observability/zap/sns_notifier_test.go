package zap

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/dnstheory/pkg/observability"
)

type stubSNS struct {
	in  *sns.PublishInput
	err error
}

func (s *stubSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	s.in = params
	if s.err != nil {
		return nil, s.err
	}
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSNSNotifier_PublishesEntryAsJSON(t *testing.T) {
	t.Parallel()

	stub := &stubSNS{}
	notifier := NewSNSNotifier(stub, "arn:aws:sns:us-east-1:123456789012:ddns-errors", SNSNotifierOptions{Subject: "updater error"})

	err := notifier.Notify(context.Background(), observability.LogEntry{
		Level:     "error",
		Message:   "record upsert failed",
		RequestID: "req_1",
	})
	require.NoError(t, err)
	require.Equal(t, "arn:aws:sns:us-east-1:123456789012:ddns-errors", aws.ToString(stub.in.TopicArn))
	require.Equal(t, "updater error", aws.ToString(stub.in.Subject))

	var entry observability.LogEntry
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(stub.in.Message)), &entry))
	require.Equal(t, "record upsert failed", entry.Message)
	require.Equal(t, "req_1", entry.RequestID)
}

func TestSNSNotifier_RequiresTopic(t *testing.T) {
	t.Parallel()

	notifier := NewSNSNotifier(&stubSNS{}, "  ", SNSNotifierOptions{})
	require.Error(t, notifier.Notify(context.Background(), observability.LogEntry{}))
}
