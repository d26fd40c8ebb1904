package dnstheory

import "github.com/oklog/ulid/v2"

// IDGenerator provides request/correlation IDs.
type IDGenerator interface {
	NewID() string
}

// ULIDGenerator generates lexicographically sortable request IDs.
type ULIDGenerator struct{}

func (ULIDGenerator) NewID() string {
	return "req_" + ulid.Make().String()
}
