package tenant

import (
	"errors"
	"log/slog"
	"net/http"
)

// Middleware creates HTTP middleware that resolves the tenant identifier of
// each request and exposes it to downstream code through a request scope.
//
// The scope is cleared when the wrapped handler returns, panics or is
// abandoned because the client went away, so nothing that outlives the
// request can observe its tenant.
func Middleware(resolver Resolver, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		errorHandler: defaultErrorHandler,
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	observe := func(o Outcome) {
		if cfg.observer != nil {
			cfg.observer(o)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skip(r.URL.Path) {
				observe(OutcomeSkipped)
				next.ServeHTTP(w, r)
				return
			}

			ctx, scope := NewScope(r.Context())
			defer scope.Clear()

			identifier, err := resolver.Resolve(r)
			if err != nil {
				observe(OutcomeRejected)
				cfg.errorHandler(w, r, err)
				return
			}

			if identifier == "" {
				if !cfg.defaultFallback {
					observe(OutcomeRejected)
					cfg.logger.DebugContext(ctx, "tenant identifier missing", slog.String("path", r.URL.Path))
					cfg.errorHandler(w, r, ErrMissingTenant)
					return
				}
				observe(OutcomeDefault)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if cfg.validator != nil {
				if err := cfg.validator(identifier); err != nil {
					observe(OutcomeRejected)
					cfg.logger.DebugContext(ctx, "tenant identifier rejected",
						slog.String("tenant_id", identifier),
						slog.Any("error", err),
					)
					cfg.errorHandler(w, r, errors.Join(ErrInvalidIdentifier, err))
					return
				}
			}

			scope.Set(identifier)
			observe(OutcomeTenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (c *config) skip(path string) bool {
	for _, p := range c.skipPaths {
		if path == p {
			return true
		}
	}
	return false
}

// RequireTenant creates middleware that ensures a tenant is present in the context.
// This is useful for protecting routes mounted behind a Middleware configured
// with WithDefaultFallback.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
