package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, report string) float64 {
	t.Helper()
	family := findFamily(t, reg, name)
	if family != nil {
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "report" && label.GetValue() == report {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func histogramCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	family := findFamily(t, reg, name)
	if family == nil {
		return 0
	}
	var total uint64
	for _, metric := range family.GetMetric() {
		total += metric.GetHistogram().GetSampleCount()
	}
	return total
}

func TestAnalyticsMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAnalyticsMetrics(reg)

	m.ObserveDuration("aging", 120*time.Millisecond)
	m.ObserveInputRows("aging", 500)
	m.IncSuccess("aging")
	m.IncFailure("fast_movers")

	require.Equal(t, float64(1), counterValue(t, reg, "analytics_pass_success", "aging"))
	require.Equal(t, float64(1), counterValue(t, reg, "analytics_pass_failure", "fast_movers"))
	require.Equal(t, uint64(1), histogramCount(t, reg, "analytics_pass_duration_seconds"))
	require.Equal(t, uint64(1), histogramCount(t, reg, "analytics_pass_input_rows"))
}

func TestNilRegistererIsSafe(t *testing.T) {
	m := NewAnalyticsMetrics(nil)
	m.ObserveDuration("aging", time.Second)
	m.IncSuccess("aging")
	m.IncFailure("aging")
	m.ObserveInputRows("aging", 1)

	var zero *AnalyticsMetrics
	zero.IncSuccess("aging")
}

func TestNormalizeLabel(t *testing.T) {
	require.Equal(t, "unknown", normalizeLabel(""))
	require.Equal(t, "aging", normalizeLabel("aging"))
}
