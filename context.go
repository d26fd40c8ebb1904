package dnstheory

import (
	"context"
	"time"

	"github.com/theory-cloud/dnstheory/pkg/observability"
)

// Context is the per-request context passed to handlers.
type Context struct {
	ctx     context.Context
	Request Request
	Params  map[string]string
	clock   Clock
	ids     IDGenerator
	logger  observability.StructuredLogger

	RequestID string
}

func (c *Context) Context() context.Context {
	if c == nil || c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

func (c *Context) Now() time.Time {
	if c == nil || c.clock == nil {
		return time.Now()
	}
	return c.clock.Now()
}

func (c *Context) Param(name string) string {
	if c == nil || c.Params == nil {
		return ""
	}
	return c.Params[name]
}

// Logger returns the request-scoped structured logger.
func (c *Context) Logger() observability.StructuredLogger {
	if c == nil || c.logger == nil {
		return observability.NewNoOpLogger()
	}
	return c.logger
}
