// Package metrics keeps the Prometheus collectors of the playground on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vit0-9/http_playground/pkg/resolver"
)

const (
	outcomeSuccess  = "success"
	outcomeEmpty    = "empty"
	outcomeNotFound = "not_found"
	outcomeTimeout  = "timeout"
	outcomeError    = "error"
)

// Metrics holds the collectors. The zero value is not usable, use New.
type Metrics struct {
	registry       *prometheus.Registry
	lookupTotal    *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
	requestTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookupTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_playground_dns_lookups_total",
				Help: "Total number of DNS lookups, labeled by backend and outcome",
			},
			[]string{"backend", "outcome"},
		),
		lookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_playground_dns_lookup_duration_seconds",
				Help:    "Time spent inside the resolver backend",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"backend"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_playground_http_requests_total",
				Help: "Total number of HTTP requests, labeled by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.lookupTotal,
		m.lookupDuration,
		m.requestTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveLookup implements resolver.Observer.
func (m *Metrics) ObserveLookup(backend string, elapsed time.Duration, addrs int, err error) {
	m.lookupDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
	m.lookupTotal.WithLabelValues(backend, lookupOutcome(addrs, err)).Inc()
}

// ObserveRequest counts a served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.requestTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func lookupOutcome(addrs int, err error) string {
	if err == nil {
		if addrs == 0 {
			return outcomeEmpty
		}
		return outcomeSuccess
	}
	resErr := &resolver.ResolutionError{Err: err}
	switch {
	case resErr.Timeout():
		return outcomeTimeout
	case resErr.NotFound():
		return outcomeNotFound
	}
	return outcomeError
}
