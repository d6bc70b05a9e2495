package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks report generation.
type Metrics struct {
	SourceLatency *prometheus.HistogramVec
	Generated     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SourceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "federation_report_source_latency_seconds",
			Help:    "Latency of each read a report snapshot is built from",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"source"}),
		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "federation_reports_generated_total",
			Help: "Reports generated by report name",
		}, []string{"report"}),
	}
}

func (m *Metrics) ObserveSourceLatency(source string, d time.Duration) {
	m.SourceLatency.WithLabelValues(source).Observe(d.Seconds())
}

func (m *Metrics) IncrementGenerated(report string) {
	m.Generated.WithLabelValues(report).Inc()
}
