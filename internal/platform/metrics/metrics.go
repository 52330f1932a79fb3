// Package metrics owns the prometheus registry and the collectors the services report to
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name
const Namespace = "reduce"

// Registry wraps a private prometheus registry
// zero value is not usable, call New
type Registry struct {
	reg *prometheus.Registry
}

// New creates a registry with the go runtime and process collectors attached
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{reg: reg}
}

// Registerer exposes the registry for collectors built elsewhere
func (r *Registry) Registerer() prometheus.Registerer { return r.reg }

// Gatherer exposes the registry for tests and exporters
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the registry in the prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
