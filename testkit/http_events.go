// Package testkit builds synthetic Lambda HTTP events for updater tests.
package testkit

import (
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// HTTPEventOptions configures synthetic HTTP events.
type HTTPEventOptions struct {
	Query    map[string][]string
	Headers  map[string]string
	SourceIP string
}

// FunctionURLRequest builds a Lambda Function URL event as the Lambda
// runtime would deliver it, including the transport source IP in the
// request context.
func FunctionURLRequest(method, path string, opts HTTPEventOptions) events.LambdaFunctionURLRequest {
	rawPath, rawQuery := splitPathAndQuery(path, opts.Query)

	return events.LambdaFunctionURLRequest{
		Version:        "2.0",
		RawPath:        rawPath,
		RawQueryString: rawQuery,
		Headers:        cloneHeaderMap(opts.Headers),
		RequestContext: events.LambdaFunctionURLRequestContext{
			HTTP: events.LambdaFunctionURLRequestContextHTTPDescription{
				Method:   strings.ToUpper(strings.TrimSpace(method)),
				Path:     rawPath,
				SourceIP: opts.SourceIP,
			},
		},
	}
}

// APIGatewayV2Request builds an API Gateway HTTP API (v2) event.
func APIGatewayV2Request(method, path string, opts HTTPEventOptions) events.APIGatewayV2HTTPRequest {
	rawPath, rawQuery := splitPathAndQuery(path, opts.Query)

	return events.APIGatewayV2HTTPRequest{
		Version:        "2.0",
		RouteKey:       "$default",
		RawPath:        rawPath,
		RawQueryString: rawQuery,
		Headers:        cloneHeaderMap(opts.Headers),
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   strings.ToUpper(strings.TrimSpace(method)),
				Path:     rawPath,
				SourceIP: opts.SourceIP,
			},
		},
	}
}

func splitPathAndQuery(path string, query map[string][]string) (string, string) {
	rawPath := path
	rawQuery := ""
	if i := strings.Index(path, "?"); i >= 0 {
		rawPath = path[:i]
		rawQuery = path[i+1:]
	}
	if len(query) > 0 {
		rawQuery = url.Values(query).Encode()
	}
	return rawPath, rawQuery
}

func cloneHeaderMap(in map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range in {
		out[k] = v
	}
	return out
}
