// Package metric provides optional Prometheus instrumentation for
// unit conversions. Attaching Metrics to a quantity kind is opt-in;
// the conversion path itself never depends on this package.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zxzenius/z-units/errors"
	"github.com/zxzenius/z-units/quantity"
)

// Metrics holds the conversion counters.
type Metrics struct {
	ConversionsTotal *prometheus.CounterVec
	ConversionErrors *prometheus.CounterVec
}

// NewMetrics creates the conversion metrics, unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		ConversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "zunits",
				Subsystem: "conversions",
				Name:      "total",
				Help:      "Total number of unit conversions attempted",
			},
			[]string{"kind", "from", "to"},
		),

		ConversionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "zunits",
				Subsystem: "conversions",
				Name:      "errors_total",
				Help:      "Total number of failed unit conversions",
			},
			[]string{"kind", "reason"},
		),
	}
}

// ObserveConversion records one conversion outcome. Failures are
// counted under the error class as the reason label.
func (m *Metrics) ObserveConversion(kind, from, to string, err error) {
	m.ConversionsTotal.WithLabelValues(kind, from, to).Inc()
	if err != nil {
		m.ConversionErrors.WithLabelValues(kind, errors.Classify(err).String()).Inc()
	}
}

var _ quantity.Observer = (*Metrics)(nil)
