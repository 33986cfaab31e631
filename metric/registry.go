package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry owns a Prometheus registry with the conversion metrics and
// Go runtime collectors registered.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	metrics            *Metrics
}

// NewRegistry creates a registry with the core metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		metrics:            NewMetrics(),
	}
	r.prometheusRegistry.MustRegister(
		r.metrics.ConversionsTotal,
		r.metrics.ConversionErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry for
// exposition.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Metrics returns the conversion metrics to attach as an observer.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}
