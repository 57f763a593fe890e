// Package metrics exposes Prometheus collectors for the HTTP surface and the
// tenant middleware.
//
//	m := metrics.New()
//	r.Use(m.Middleware)
//	r.Use(tenant.Middleware(resolver, tenant.WithObserver(m.ObserveTenant)))
//	r.Method(http.MethodGet, "/metrics", m.Handler())
package metrics
