package dnstheory

import (
	"net/netip"
	"strings"
)

// callerIP resolves the address the A record should point at.
//
// The transport-layer source address is authoritative. A client-supplied
// header is consulted only when Config.TrustedProxyHeader names it, and then
// only its last entry, the one the trusted proxy appended for the connection
// it accepted. Earlier entries arrive in the caller's request and can be
// injected upstream of the proxy.
func (a *App) callerIP(req Request) (string, error) {
	raw := req.SourceIP
	if a.cfg.TrustedProxyHeader != "" {
		header := firstHeaderValue(req.Headers, a.cfg.TrustedProxyHeader)
		if i := strings.LastIndexByte(header, ','); i >= 0 {
			header = header[i+1:]
		}
		raw = strings.TrimSpace(header)
	}

	if raw == "" {
		return "", &AppError{Code: errorCodeIPUnresolved, Message: errorMessageIPUnresolved}
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return "", &AppError{Code: errorCodeIPUnresolved, Message: errorMessageIPUnresolved}
	}
	// The managed record is a fixed A record; an IPv6 caller cannot be
	// published into it.
	if !addr.Is4() && !addr.Is4In6() {
		return "", &AppError{Code: errorCodeIPUnresolved, Message: "caller address is not IPv4"}
	}
	return addr.Unmap().String(), nil
}
