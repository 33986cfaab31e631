package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxzenius/z-units/quantity"
)

func TestMetrics_ObserveConversion(t *testing.T) {
	r := NewRegistry()
	length := quantity.Length.WithObserver(r.Metrics())

	q, err := length.New(1, "m")
	require.NoError(t, err)
	_, err = q.To("ft")
	require.NoError(t, err)
	_, err = q.To("ft")
	require.NoError(t, err)
	_, err = q.To("furlong")
	require.Error(t, err)

	m := r.Metrics()
	assert.Equal(t, 2.0,
		testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("length", "m", "ft")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("length", "m", "furlong")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(m.ConversionErrors.WithLabelValues("length", "not_found")))
}

func TestRegistry_Gather(t *testing.T) {
	r := NewRegistry()
	r.Metrics().ObserveConversion("length", "m", "ft", nil)

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "zunits_conversions_total")
}
