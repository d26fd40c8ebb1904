package dnstheory

const (
	errorCodeBadRequest       = "ddns.bad_request"
	errorCodeForbidden        = "ddns.forbidden"
	errorCodeIPUnresolved     = "ddns.ip_unresolved"
	errorCodeUpstream         = "ddns.upstream"
	errorCodeNotFound         = "ddns.not_found"
	errorCodeMethodNotAllowed = "ddns.method_not_allowed"
	errorCodeConfig           = "ddns.config"
	errorCodeInternal         = "ddns.internal"
)

const (
	errorMessageForbidden        = "invalid authorization"
	errorMessageIPUnresolved     = "unable to determine caller address"
	errorMessageNotFound         = "not found"
	errorMessageMethodNotAllowed = "method not allowed"
	errorMessageInternal         = "internal error"
)
