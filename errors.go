package dnstheory

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AppError is a client-safe error with a stable ddns.* code.
//
// Detail is for upstream provider failures only: it carries the provider's
// own error text so a periodic caller can see why an update was rejected.
// The token is never placed in an AppError.
type AppError struct {
	Code    string
	Message string
	Detail  string
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func authError() *AppError {
	return &AppError{Code: errorCodeForbidden, Message: errorMessageForbidden}
}

func upstreamError(err error) *AppError {
	return &AppError{Code: errorCodeUpstream, Message: "DNS provider request failed", Detail: err.Error()}
}

func statusForErrorCode(code string) int {
	switch code {
	case errorCodeBadRequest, errorCodeIPUnresolved, errorCodeConfig:
		return 400
	case errorCodeForbidden:
		return 403
	case errorCodeNotFound:
		return 404
	case errorCodeMethodNotAllowed:
		return 405
	case errorCodeUpstream:
		return 502
	case errorCodeInternal:
		return 500
	default:
		return 500
	}
}

func errorResponse(code, message string, headers map[string][]string, requestID string) Response {
	headers = canonicalizeHeaders(headers)
	headers["content-type"] = []string{"application/json; charset=utf-8"}

	errBody := map[string]any{
		"code":    code,
		"message": message,
	}
	if requestID != "" {
		errBody["request_id"] = requestID
	}
	body, err := json.Marshal(map[string]any{"error": errBody})
	if err != nil {
		body = []byte(`{"error":{"code":"ddns.internal","message":"internal error"}}`)
	}

	return Response{
		Status:  statusForErrorCode(code),
		Headers: headers,
		Body:    body,
	}
}

func responseForError(err error, requestID string) Response {
	var appErr *AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if appErr.Detail != "" {
			message = appErr.Message + ": " + appErr.Detail
		}
		return errorResponse(appErr.Code, message, nil, requestID)
	}
	return errorResponse(errorCodeInternal, errorMessageInternal, nil, requestID)
}

func errorCodeForError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != "" {
		return appErr.Code
	}
	return errorCodeInternal
}
