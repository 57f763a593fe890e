package tenant

import (
	"net/http"
	"net/url"
	"strings"
)

// DefaultHeader is the header read by FromHeader when no name is given.
const DefaultHeader = "X-Tenant-ID"

// Resolver reports the tenant identifier a request carries, or "" when it
// carries none. An error aborts the request.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(r *http.Request) (string, error)

func (f ResolverFunc) Resolve(r *http.Request) (string, error) {
	return f(r)
}

// FromPathSegment resolves the tenant from the n-th segment (1-based) of the
// slash-trimmed request path, so n=2 reads "acme" from "/api/acme/users".
// A missing or empty segment ("/api", "/api//users") yields "".
// n < 1 makes every call fail with ErrInvalidPosition.
//
// Segments are taken verbatim from the escaped path, the same form the router
// matches on. A segment that decodes to something containing "/" is rejected
// with ErrInvalidIdentifier.
func FromPathSegment(n int) ResolverFunc {
	return func(r *http.Request) (string, error) {
		if n < 1 {
			return "", ErrInvalidPosition
		}
		rest := strings.Trim(r.URL.EscapedPath(), "/")
		for i := 1; i < n; i++ {
			_, after, found := strings.Cut(rest, "/")
			if !found {
				return "", nil
			}
			rest = after
		}
		segment, _, _ := strings.Cut(rest, "/")
		if strings.Contains(segment, "%") {
			decoded, err := url.PathUnescape(segment)
			if err != nil || strings.Contains(decoded, "/") {
				return "", ErrInvalidIdentifier
			}
		}
		return segment, nil
	}
}

// FromHeader resolves the tenant from a request header, trimming spaces.
// An empty name selects DefaultHeader.
func FromHeader(name string) ResolverFunc {
	if name == "" {
		name = DefaultHeader
	}
	return func(r *http.Request) (string, error) {
		return strings.TrimSpace(r.Header.Get(name)), nil
	}
}
