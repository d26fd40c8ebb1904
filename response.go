package dnstheory

import "encoding/json"

// Response is the canonical HTTP response model returned by the runtime.
type Response struct {
	Status int
	// Headers are canonicalized to lowercase keys during normalization.
	Headers map[string][]string
	Body    []byte
}

// Text builds a text/plain response (utf-8).
func Text(status int, body string) *Response {
	return &Response{
		Status: status,
		Headers: map[string][]string{
			"content-type": {"text/plain; charset=utf-8"},
		},
		Body: []byte(body),
	}
}

// JSON builds an application/json response (utf-8).
func JSON(status int, value any) (*Response, error) {
	body, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return &Response{
		Status: status,
		Headers: map[string][]string{
			"content-type": {"application/json; charset=utf-8"},
		},
		Body: body,
	}, nil
}

func normalizeResponse(in *Response, requestID string) Response {
	if in == nil {
		return errorResponse(errorCodeInternal, errorMessageInternal, nil, requestID)
	}
	out := *in
	if out.Status == 0 {
		out.Status = 200
	}
	out.Headers = canonicalizeHeaders(out.Headers)
	if requestID != "" {
		out.Headers["x-request-id"] = []string{requestID}
	}
	out.Body = append([]byte(nil), out.Body...)
	return out
}
