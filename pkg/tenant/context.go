package tenant

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Scope holds the active tenant identifier of a single request.
//
// A Scope is created per request by Middleware and must never be shared
// between requests. It is safe to read from goroutines spawned by the
// request handler; once cleared they observe no tenant.
type Scope struct {
	id atomic.Pointer[string]
}

// Set stores id as the active tenant, overwriting any prior value.
func (s *Scope) Set(id string) {
	s.id.Store(&id)
}

// Get returns the active tenant identifier.
// Returns "", false when nothing is set or the scope was cleared.
func (s *Scope) Get() (string, bool) {
	if s == nil {
		return "", false
	}
	p := s.id.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

// Clear removes the active tenant unconditionally.
func (s *Scope) Clear() {
	s.id.Store(nil)
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// NewScope attaches a fresh, empty scope to ctx.
func NewScope(ctx context.Context) (context.Context, *Scope) {
	s := &Scope{}
	return context.WithValue(ctx, contextKey{}, s), s
}

// WithTenant returns a context whose scope is already set to id.
// Intended for code running outside the HTTP middleware, such as
// background jobs and tests.
func WithTenant(ctx context.Context, id string) context.Context {
	ctx, s := NewScope(ctx)
	s.Set(id)
	return ctx
}

// ScopeFromContext returns the scope attached to ctx, or nil.
func ScopeFromContext(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*Scope)
	return s
}

// FromContext retrieves the active tenant identifier from the context.
// Returns "", false if no scope is attached or the scope is empty.
func FromContext(ctx context.Context) (string, bool) {
	return ScopeFromContext(ctx).Get()
}

// MustFromContext retrieves the tenant identifier from the context.
// Panics if no tenant is found. Use this only in handlers
// that absolutely require a tenant to function.
func MustFromContext(ctx context.Context) string {
	id, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no tenant in context")
	}
	return id
}

// LoggerExtractor returns a ContextExtractor for the logger that extracts tenant ID from context
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := FromContext(ctx); ok {
			return slog.String("tenant_id", id), true
		}
		return slog.Attr{}, false
	}
}
