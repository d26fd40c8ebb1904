package dnstheory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServe_UnknownPath_NotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig(AuthSchemePath), &stubProvider{})

	resp := app.Serve(context.Background(), Request{Method: "GET", Path: "/nope"})
	require.Equal(t, 404, resp.Status)
}

func TestServe_WrongMethod_MethodNotAllowedWithAllowHeader(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig(AuthSchemePath), &stubProvider{})

	resp := app.Serve(context.Background(), Request{Method: "DELETE", Path: "/update/abc123"})
	require.Equal(t, 405, resp.Status)
	require.Equal(t, []string{"GET, POST"}, resp.Headers["allow"])
}

func TestServe_PostVariant_Accepted(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	app := newTestApp(t, testConfig(AuthSchemePath), provider)

	req := pathUpdateRequest(testToken, "203.0.113.42")
	req.Method = "POST"
	resp := app.Serve(context.Background(), req)
	require.Equal(t, 200, resp.Status)
	require.Equal(t, 1, provider.upsertCalls)
}

func TestServe_GeneratesAndEchoesRequestID(t *testing.T) {
	t.Parallel()

	app, err := New(testConfig(AuthSchemePath), &stubProvider{})
	require.NoError(t, err)

	resp := app.Serve(context.Background(), pathUpdateRequest(testToken, "203.0.113.42"))
	require.Len(t, resp.Headers["x-request-id"], 1)
	require.True(t, strings.HasPrefix(resp.Headers["x-request-id"][0], "req_"))

	// A caller-supplied correlation ID is preserved.
	req := pathUpdateRequest(testToken, "203.0.113.42")
	req.Headers = map[string][]string{"X-Request-Id": {"req_caller"}}
	resp = app.Serve(context.Background(), req)
	require.Equal(t, []string{"req_caller"}, resp.Headers["x-request-id"])
}

func TestServe_PanicBecomesInternalError(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig(AuthSchemePath), &stubProvider{})
	app.Use(func(Handler) Handler {
		return func(*Context) (*Response, error) { panic("boom") }
	})

	resp := app.Serve(context.Background(), pathUpdateRequest(testToken, "203.0.113.42"))
	require.Equal(t, 500, resp.Status)
	require.Contains(t, string(resp.Body), "ddns.internal")
}

func TestServe_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	app := newTestApp(t, testConfig(AuthSchemePath), &stubProvider{})
	app.Use(func(next Handler) Handler {
		return func(c *Context) (*Response, error) {
			order = append(order, "m1")
			return next(c)
		}
	}).Use(func(next Handler) Handler {
		return func(c *Context) (*Response, error) {
			order = append(order, "m2")
			return next(c)
		}
	})

	resp := app.Serve(context.Background(), pathUpdateRequest(testToken, "203.0.113.42"))
	require.Equal(t, 200, resp.Status)
	require.Equal(t, []string{"m1", "m2"}, order)
}

func TestServe_Health(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig(AuthSchemeBearer), &stubProvider{})

	resp := app.Serve(context.Background(), Request{Method: "GET", Path: "/healthz"})
	require.Equal(t, 200, resp.Status)
	require.Equal(t, "ok", string(resp.Body))
}

func TestServe_ObservabilityLevels(t *testing.T) {
	t.Parallel()

	var logs []LogRecord
	app := newTestApp(t, testConfig(AuthSchemePath), &stubProvider{},
		WithObservability(ObservabilityHooks{Log: func(r LogRecord) { logs = append(logs, r) }}))

	app.Serve(context.Background(), pathUpdateRequest(testToken, "203.0.113.42"))
	app.Serve(context.Background(), pathUpdateRequest("wrong", "203.0.113.42"))

	require.Len(t, logs, 2)
	require.Equal(t, "info", logs[0].Level)
	require.Equal(t, "", logs[0].ErrorCode)
	require.Equal(t, "warn", logs[1].Level)
	require.Equal(t, "ddns.forbidden", logs[1].ErrorCode)
}
