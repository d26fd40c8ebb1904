package dnstheory

import (
	"net"
	"net/http"
)

// HTTPHandler bridges the App onto net/http for runs outside Lambda.
// RemoteAddr fills the transport source IP, so the trust model matches the
// Lambda adapters.
func (a *App) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sourceIP := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			sourceIP = host
		}

		resp := a.Serve(r.Context(), Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			Query:    r.URL.Query(),
			Headers:  r.Header,
			SourceIP: sourceIP,
		})

		for key, values := range resp.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)
	})
}
