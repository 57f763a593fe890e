// Package tenant scopes HTTP requests to a tenant identifier taken from the request.
//
// The package is built around three pieces:
//
// 1. Resolvers - extract the tenant identifier from a request (path segment or header)
// 2. Scope - a per-request slot holding the active identifier, carried in context.Context
// 3. Middleware - creates the scope, fills it from the resolver and clears it when the request ends
//
// There is no global or per-goroutine state. Every request gets its own
// Scope, so concurrent requests never observe each other's tenant, and the
// deferred Clear guarantees nothing outlives the request with a stale value.
//
// # Usage
//
//	import "github.com/dmitrymomot/orgdb/pkg/tenant"
//
//	// /api/{tenantId}/... -> second path segment
//	resolver := tenant.FromPathSegment(2)
//
//	mw := tenant.Middleware(resolver,
//		tenant.WithSkipPaths("/api/generate-org-id"),
//	)
//
//	r.Route("/api", func(r chi.Router) {
//		r.Use(mw)
//		r.Get("/{tenantId}/users", listUsers)
//	})
//
//	// Downstream code reads the identifier from the context.
//	func listUsers(w http.ResponseWriter, r *http.Request) {
//		id, ok := tenant.FromContext(r.Context())
//		...
//	}
//
// # Missing identifiers
//
// By default a request whose path carries no tenant segment is rejected with
// ErrMissingTenant (400). WithDefaultFallback(true) lets such requests
// through with an empty scope, which downstream routing treats as "use the
// default database".
//
// # Error Handling
//
//   - ErrMissingTenant: no identifier in a tenant-scoped request
//   - ErrInvalidIdentifier: identifier rejected by the configured Validator
//   - ErrNoTenantInContext: RequireTenant found an empty scope
//   - ErrInvalidPosition: PathResolver misconfigured
//
// Custom error handlers can be configured with WithErrorHandler.
package tenant
