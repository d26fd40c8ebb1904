package dnstheory_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/dnstheory"
	"github.com/theory-cloud/dnstheory/testkit"
)

type recordingProvider struct {
	value  string
	exists bool
	writes int
}

func (p *recordingProvider) GetRecord(context.Context, dnstheory.RecordTarget) (string, error) {
	if !p.exists {
		return "", dnstheory.ErrRecordNotFound
	}
	return p.value, nil
}

func (p *recordingProvider) UpsertRecord(_ context.Context, _ dnstheory.RecordTarget, value string) error {
	p.writes++
	p.value = value
	p.exists = true
	return nil
}

func demoConfig(scheme dnstheory.AuthScheme) dnstheory.Config {
	return dnstheory.Config{
		ZoneID:     "Z1234567890ABC",
		RecordName: "home.example.com",
		AuthScheme: scheme,
		AuthToken:  "abc123",
	}
}

func TestServeLambdaFunctionURL_EndToEnd(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{value: "203.0.113.1", exists: true}
	app, err := dnstheory.New(demoConfig(dnstheory.AuthSchemePath), provider)
	require.NoError(t, err)

	event := testkit.FunctionURLRequest("GET", "/update/abc123", testkit.HTTPEventOptions{
		SourceIP: "203.0.113.42",
	})
	out := app.ServeLambdaFunctionURL(context.Background(), event)

	require.Equal(t, 200, out.StatusCode)
	require.Equal(t, "application/json; charset=utf-8", out.Headers["content-type"])

	var result dnstheory.UpdateResult
	require.NoError(t, json.Unmarshal([]byte(out.Body), &result))
	require.Equal(t, "DNS updated", result.Message)
	require.Equal(t, "home.example.com", result.Record)
	require.Equal(t, "203.0.113.42", result.IP)
	require.Equal(t, 1, provider.writes)
}

func TestServeLambdaFunctionURL_SpoofedHeaderIgnored(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{}
	app, err := dnstheory.New(demoConfig(dnstheory.AuthSchemePath), provider)
	require.NoError(t, err)

	// X-Forwarded-For must not override the transport source IP unless the
	// deployment explicitly trusts a proxy header.
	event := testkit.FunctionURLRequest("GET", "/update/abc123", testkit.HTTPEventOptions{
		Headers:  map[string]string{"X-Forwarded-For": "198.51.100.99"},
		SourceIP: "203.0.113.42",
	})
	out := app.ServeLambdaFunctionURL(context.Background(), event)

	require.Equal(t, 200, out.StatusCode)
	require.Equal(t, "203.0.113.42", provider.value)
}

func TestServeAPIGatewayV2_BearerDeployment(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{value: "203.0.113.1", exists: true}
	app, err := dnstheory.New(demoConfig(dnstheory.AuthSchemeBearer), provider)
	require.NoError(t, err)

	event := testkit.APIGatewayV2Request("GET", "/update", testkit.HTTPEventOptions{
		Headers:  map[string]string{"Authorization": "Bearer abc123"},
		SourceIP: "203.0.113.1",
	})
	out := app.ServeAPIGatewayV2(context.Background(), event)

	require.Equal(t, 200, out.StatusCode)

	var result dnstheory.UpdateResult
	require.NoError(t, json.Unmarshal([]byte(out.Body), &result))
	require.False(t, result.Updated)
	require.Zero(t, provider.writes)
}

func TestServeLambdaFunctionURL_BadToken(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{}
	app, err := dnstheory.New(demoConfig(dnstheory.AuthSchemePath), provider)
	require.NoError(t, err)

	event := testkit.FunctionURLRequest("GET", "/update/wrong", testkit.HTTPEventOptions{
		SourceIP: "203.0.113.42",
	})
	out := app.ServeLambdaFunctionURL(context.Background(), event)

	require.Equal(t, 403, out.StatusCode)
	require.Zero(t, provider.writes)
}

func TestHTTPHandler_LocalBridge(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{}
	app, err := dnstheory.New(demoConfig(dnstheory.AuthSchemePath), provider)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/update/abc123", nil)
	req.RemoteAddr = "203.0.113.42:51234"
	rec := httptest.NewRecorder()
	app.HTTPHandler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Equal(t, "203.0.113.42", provider.value)
}
