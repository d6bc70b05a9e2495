package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers the outbox from append to relay.
type Metrics struct {
	Recorded        *prometheus.CounterVec
	Published       *prometheus.CounterVec
	PublishFailures prometheus.Counter
	CircuitOpen     prometheus.Gauge
	RelayBatchSize  prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Recorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "federation_events_recorded_total",
			Help: "Domain events appended to the outbox, by type",
		}, []string{"type"}),
		Published: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "federation_events_published_total",
			Help: "Domain events relayed to the event bus, by type",
		}, []string{"type"}),
		PublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_events_publish_failures_total",
			Help: "Failed relay attempts",
		}),
		CircuitOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "federation_events_circuit_open",
			Help: "1 while the relay circuit breaker is open",
		}),
		RelayBatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "federation_events_relay_batch_size",
			Help:    "Number of unpublished events fetched per relay tick",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

func (m *Metrics) IncRecorded(typ string) {
	m.Recorded.WithLabelValues(typ).Inc()
}

func (m *Metrics) IncPublished(typ string) {
	m.Published.WithLabelValues(typ).Inc()
}

func (m *Metrics) IncPublishFailures() {
	m.PublishFailures.Inc()
}

func (m *Metrics) SetCircuitOpen(open bool) {
	if open {
		m.CircuitOpen.Set(1)
		return
	}
	m.CircuitOpen.Set(0)
}

func (m *Metrics) ObserveBatch(n int) {
	m.RelayBatchSize.Observe(float64(n))
}
