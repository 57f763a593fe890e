// Package api wires the HTTP surface of the service.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/orgdb/internal/users"
	"github.com/dmitrymomot/orgdb/pkg/dbrouter"
	"github.com/dmitrymomot/orgdb/pkg/httpserver"
	"github.com/dmitrymomot/orgdb/pkg/logger"
	"github.com/dmitrymomot/orgdb/pkg/metrics"
	"github.com/dmitrymomot/orgdb/pkg/orgid"
	"github.com/dmitrymomot/orgdb/pkg/requestid"
	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

// GenerateOrgIDPath is served without tenant resolution.
const GenerateOrgIDPath = "/api/generate-org-id"

// Deps are the collaborators of the HTTP surface. Store is required.
type Deps struct {
	Store    users.Store
	Database dbrouter.NameFunc // used for log attributes only
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Tenant   tenant.Config

	// Validator runs when Tenant.ValidateIDs is set.
	Validator tenant.Validator
	// NewID defaults to orgid.Generate.
	NewID func() (uuid.UUID, error)
	// Ready checks back GET /health/ready.
	Ready []func(context.Context) error
}

// Router builds the service handler.
func Router(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}
	if deps.NewID == nil {
		deps.NewID = orgid.Generate
	}
	if deps.Database == nil {
		deps.Database = func(context.Context) string { return "" }
	}

	errs := errorWriter{log: deps.Logger}
	h := &handlers{deps: deps, errs: errs}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) { errs.write(w, r, ErrNotFound) })

	ready := deps.Ready
	if len(ready) == 0 {
		ready = []func(context.Context) error{func(context.Context) error { return nil }}
	}
	r.Get("/health/live", httpserver.HealthCheckHandler(deps.Logger))
	r.Get("/health/ready", httpserver.HealthCheckHandler(deps.Logger, ready...))

	r.Route("/api", func(r chi.Router) {
		r.Use(tenant.Middleware(tenant.FromPathSegment(pathPosition(deps.Tenant)), tenantOptions(deps, errs)...))

		r.Get("/generate-org-id", h.generateOrgID)

		r.Group(func(r chi.Router) {
			if !deps.Tenant.DefaultFallback {
				r.Use(tenant.RequireTenant(errs.write))
			}
			r.Post("/{tenantID}/users", h.createUser)
			r.Get("/{tenantID}/users", h.listUsers)
		})
	})

	return r
}

func pathPosition(cfg tenant.Config) int {
	if cfg.PathPosition > 0 {
		return cfg.PathPosition
	}
	return 2
}

func tenantOptions(deps Deps, errs errorWriter) []tenant.Option {
	opts := []tenant.Option{
		tenant.WithErrorHandler(errs.write),
		tenant.WithSkipPaths(GenerateOrgIDPath),
		tenant.WithSkipPaths(deps.Tenant.SkipPaths...),
		tenant.WithDefaultFallback(deps.Tenant.DefaultFallback),
		tenant.WithLogger(deps.Logger),
	}
	if deps.Tenant.ValidateIDs && deps.Validator != nil {
		opts = append(opts, tenant.WithValidator(deps.Validator))
	}
	if deps.Metrics != nil {
		opts = append(opts, tenant.WithObserver(deps.Metrics.ObserveTenant))
	}
	return opts
}
