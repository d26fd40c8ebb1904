package dnstheory

import (
	"sort"
	"strings"
)

// Request is the canonical HTTP request model used by the updater runtime.
//
// SourceIP is the transport-layer peer address reported by the event source
// (Lambda request context or net/http RemoteAddr). It is populated by the
// adapters, never from client-supplied headers.
type Request struct {
	Method   string
	Path     string
	Query    map[string][]string
	Headers  map[string][]string
	SourceIP string
}

func normalizeRequest(in Request) Request {
	out := in
	out.Method = strings.ToUpper(strings.TrimSpace(in.Method))
	out.Path = normalizePath(in.Path)
	out.Query = cloneQuery(in.Query)
	out.Headers = canonicalizeHeaders(in.Headers)
	out.SourceIP = strings.TrimSpace(in.SourceIP)
	return out
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// canonicalizeHeaders lowercases header names and merges duplicates in a
// deterministic key order. Handler code treats header names as lowercase.
func canonicalizeHeaders(in map[string][]string) map[string][]string {
	if len(in) == 0 {
		return map[string][]string{}
	}

	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := map[string][]string{}
	for _, key := range keys {
		lower := strings.ToLower(strings.TrimSpace(key))
		if lower == "" {
			continue
		}
		out[lower] = append(out[lower], in[key]...)
	}
	return out
}

func cloneQuery(in map[string][]string) map[string][]string {
	out := map[string][]string{}
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func firstHeaderValue(headers map[string][]string, name string) string {
	values := headers[strings.ToLower(name)]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
