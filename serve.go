package dnstheory

import "context"

type serveState struct {
	method    string
	path      string
	requestID string
	errorCode string
}

// Serve dispatches one request through the router and returns a normalized
// response. It never panics: handler panics become ddns.internal responses.
func (a *App) Serve(ctx context.Context, req Request) (resp Response) {
	if a == nil || a.router == nil {
		return errorResponse(errorCodeInternal, errorMessageInternal, nil, "")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	state := serveState{}
	defer func() {
		if r := recover(); r != nil {
			state.errorCode = errorCodeInternal
			resp = errorResponse(errorCodeInternal, errorMessageInternal, nil, state.requestID)
		}
		resp = normalizeResponse(&resp, state.requestID)
		a.recordObservability(state.method, state.path, state.requestID, resp.Status, state.errorCode)
	}()

	resp = a.serveCore(ctx, req, &state)
	return resp
}

func (a *App) serveCore(ctx context.Context, req Request, state *serveState) Response {
	normalized := normalizeRequest(req)
	state.method = normalized.Method

	state.requestID = firstHeaderValue(normalized.Headers, "x-request-id")
	if state.requestID == "" {
		state.requestID = a.ids.NewID()
	}

	match, allowed, pattern := a.router.match(state.method, normalized.Path)
	if match == nil {
		state.path = a.unmatchedPath(normalized.Path, pattern)
		if len(allowed) > 0 {
			state.errorCode = errorCodeMethodNotAllowed
			headers := map[string][]string{"allow": {formatAllowHeader(allowed)}}
			return errorResponse(errorCodeMethodNotAllowed, errorMessageMethodNotAllowed, headers, state.requestID)
		}
		state.errorCode = errorCodeNotFound
		return errorResponse(errorCodeNotFound, errorMessageNotFound, nil, state.requestID)
	}

	// Log the matched pattern, not the raw path: under the path auth
	// scheme the raw path carries the presented token.
	state.path = match.Route.Pattern

	requestCtx := &Context{
		ctx:       ctx,
		Request:   normalized,
		Params:    match.Params,
		clock:     a.clock,
		ids:       a.ids,
		logger:    a.logger.WithRequestID(state.requestID),
		RequestID: state.requestID,
	}

	handler := a.applyMiddlewares(match.Route.Handler)
	out, err := handler(requestCtx)
	if err != nil {
		state.errorCode = errorCodeForError(err)
		return responseForError(err, state.requestID)
	}
	return normalizeResponse(out, state.requestID)
}

// unmatchedPath is the path observability records when no route handles the
// request, where there is no matched pattern to substitute. Under the path
// auth scheme the raw path can carry the presented token, so it is never
// recorded: a method mismatch records the pattern the path matched, anything
// else a fixed placeholder.
func (a *App) unmatchedPath(path, pattern string) string {
	if a.cfg.AuthScheme != AuthSchemePath {
		return path
	}
	if pattern != "" {
		return pattern
	}
	return "(unmatched)"
}

func (a *App) handleHealth(*Context) (*Response, error) {
	return Text(200, "ok"), nil
}
