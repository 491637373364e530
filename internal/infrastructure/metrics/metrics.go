// Package metrics exposes the Prometheus collectors of the API process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Entitlement resolution outcomes.
const (
	OutcomeNoCustomer    = "no_customer"
	OutcomeCacheHit      = "cache_hit"
	OutcomeResolved      = "resolved"
	OutcomeProviderError = "provider_error"
)

// EntitlementMetrics records how entitlement reads were served.
type EntitlementMetrics interface {
	IncResolution(outcome string)
}

// HTTPMetrics records served requests.
type HTTPMetrics interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Registry owns the process collectors.
type Registry struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	resolutions     *prometheus.CounterVec
}

// NewRegistry creates the collectors on a dedicated registry, together with the
// Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		registry: reg,
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "The total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		resolutions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "entitlement_resolutions_total",
				Help: "The total number of entitlement resolutions by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) IncResolution(outcome string) {
	r.resolutions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
