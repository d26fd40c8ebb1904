package dnstheory

import (
	"crypto/subtle"
	"strings"
)

// authenticate validates the presented token against the configured token
// source. It runs before any provider or network work and returns
// ddns.forbidden for every failure mode, so callers cannot distinguish a
// missing token from a wrong one.
func (a *App) authenticate(ctx *Context) error {
	presented := a.presentedToken(ctx)
	if presented == "" {
		return authError()
	}

	expected, err := a.tokens.Token(ctx.Context())
	if err != nil {
		// Token source unavailable fails closed but is reported as an
		// upstream problem, not as a bad credential.
		return upstreamError(err)
	}
	if expected == "" {
		return authError()
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
		return authError()
	}
	return nil
}

func (a *App) presentedToken(ctx *Context) string {
	switch a.cfg.AuthScheme {
	case AuthSchemePath:
		return strings.TrimSpace(ctx.Param("token"))
	case AuthSchemeBearer:
		return bearerToken(ctx.Request.Headers)
	default:
		return ""
	}
}

func bearerToken(headers map[string][]string) string {
	value := firstHeaderValue(headers, "authorization")
	if value == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(value, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
