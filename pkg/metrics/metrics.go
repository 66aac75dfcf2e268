package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalyticsMetrics records metadata for analysis passes.
type AnalyticsMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	rows     *prometheus.HistogramVec
}

// NewAnalyticsMetrics registers the analytics metrics on the provided registerer.
func NewAnalyticsMetrics(reg prometheus.Registerer) *AnalyticsMetrics {
	if reg == nil {
		return &AnalyticsMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_pass_duration_seconds",
		Help:    "Duration of analytics passes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_pass_success",
		Help: "Successful analytics passes.",
	}, []string{"report"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analytics_pass_failure",
		Help: "Failed analytics passes.",
	}, []string{"report"})
	rows := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analytics_pass_input_rows",
		Help:    "Order item rows consumed per analytics pass.",
		Buckets: prometheus.ExponentialBuckets(10, 10, 6),
	}, []string{"report"})
	reg.MustRegister(duration, success, failure, rows)
	return &AnalyticsMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		rows:     rows,
	}
}

// ObserveDuration records the duration for the named report.
func (m *AnalyticsMetrics) ObserveDuration(report string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(report)).Observe(duration.Seconds())
}

// ObserveInputRows records how many order item rows fed the pass.
func (m *AnalyticsMetrics) ObserveInputRows(report string, rows int) {
	if m == nil || m.rows == nil {
		return
	}
	m.rows.WithLabelValues(normalizeLabel(report)).Observe(float64(rows))
}

// IncSuccess increments the success counter for the named report.
func (m *AnalyticsMetrics) IncSuccess(report string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(report)).Inc()
}

// IncFailure increments the failure counter for the named report.
func (m *AnalyticsMetrics) IncFailure(report string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(report)).Inc()
}

func normalizeLabel(report string) string {
	if report == "" {
		return "unknown"
	}
	return report
}
