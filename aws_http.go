package dnstheory

import (
	"context"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// ServeLambdaFunctionURL adapts a Lambda Function URL invocation. The caller
// address comes from the event's request context, which Lambda populates
// from the TCP connection.
func (a *App) ServeLambdaFunctionURL(ctx context.Context, event events.LambdaFunctionURLRequest) events.LambdaFunctionURLResponse {
	req := requestFromHTTPEvent(
		event.RequestContext.HTTP.Method,
		event.RawPath,
		event.RawQueryString,
		event.Headers,
		event.RequestContext.HTTP.SourceIP,
	)
	return lambdaFunctionURLResponseFromResponse(a.Serve(ctx, req))
}

// ServeAPIGatewayV2 adapts an API Gateway HTTP API (v2) invocation.
func (a *App) ServeAPIGatewayV2(ctx context.Context, event events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	req := requestFromHTTPEvent(
		event.RequestContext.HTTP.Method,
		event.RawPath,
		event.RawQueryString,
		event.Headers,
		event.RequestContext.HTTP.SourceIP,
	)
	return apigatewayV2ResponseFromResponse(a.Serve(ctx, req))
}

func requestFromHTTPEvent(method, rawPath, rawQueryString string, singleHeaders map[string]string, sourceIP string) Request {
	query := map[string][]string{}
	if parsed, err := url.ParseQuery(strings.TrimPrefix(rawQueryString, "?")); err == nil {
		query = parsed
	}

	headers := map[string][]string{}
	for key, value := range singleHeaders {
		headers[key] = append(headers[key], value)
	}

	return Request{
		Method:   method,
		Path:     rawPath,
		Query:    query,
		Headers:  headers,
		SourceIP: sourceIP,
	}
}

func lambdaFunctionURLResponseFromResponse(resp Response) events.LambdaFunctionURLResponse {
	return events.LambdaFunctionURLResponse{
		StatusCode: resp.Status,
		Headers:    singleHeaders(resp.Headers),
		Body:       string(resp.Body),
	}
}

func apigatewayV2ResponseFromResponse(resp Response) events.APIGatewayV2HTTPResponse {
	out := events.APIGatewayV2HTTPResponse{
		StatusCode:        resp.Status,
		Headers:           singleHeaders(resp.Headers),
		MultiValueHeaders: map[string][]string{},
		Body:              string(resp.Body),
	}
	for key, values := range resp.Headers {
		if len(values) == 0 {
			continue
		}
		out.MultiValueHeaders[key] = append([]string(nil), values...)
	}
	return out
}

func singleHeaders(in map[string][]string) map[string]string {
	out := map[string]string{}
	for key, values := range in {
		if len(values) == 0 {
			continue
		}
		out[key] = values[0]
	}
	return out
}
