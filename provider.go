package dnstheory

import (
	"context"
	"errors"
)

const RecordTypeA = "A"

// ErrRecordNotFound is returned by Provider.GetRecord when the target record
// does not exist yet. The handler treats it as "current value: none".
var ErrRecordNotFound = errors.New("dnstheory: record not found")

// RecordTarget identifies the single DNS record a deployment manages.
// It is configured once and never mutated by the handler.
type RecordTarget struct {
	ZoneID     string
	Name       string
	Type       string
	TTLSeconds int64
}

// Provider is the DNS backend capability consumed by the updater.
//
// UpsertRecord must be atomic create-or-replace: the provider, not this
// service, serializes concurrent writes to the same record. GetRecord and
// UpsertRecord are independent calls, not a transaction.
type Provider interface {
	GetRecord(ctx context.Context, target RecordTarget) (string, error)
	UpsertRecord(ctx context.Context, target RecordTarget, value string) error
}
