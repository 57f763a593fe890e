package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

const namespace = "orgdb"

// Metrics holds the service collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts HTTP requests by method, route pattern and status class.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration records HTTP request latency by method and route pattern.
	RequestDuration *prometheus.HistogramVec
	// InFlight tracks requests currently being served.
	InFlight prometheus.Gauge
	// TenantResolutions counts tenant middleware outcomes.
	TenantResolutions *prometheus.CounterVec
}

// New registers the collectors in a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "HTTP requests being served",
			},
		),
		TenantResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tenant_resolutions_total",
				Help:      "Tenant resolution outcomes",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.InFlight,
		m.TenantResolutions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Pre-create outcome series so dashboards show zeroes.
	for _, o := range []tenant.Outcome{tenant.OutcomeTenant, tenant.OutcomeDefault, tenant.OutcomeRejected, tenant.OutcomeSkipped} {
		m.TenantResolutions.WithLabelValues(string(o))
	}

	return m
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTenant is passed to tenant.WithObserver.
func (m *Metrics) ObserveTenant(o tenant.Outcome) {
	m.TenantResolutions.WithLabelValues(string(o)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
