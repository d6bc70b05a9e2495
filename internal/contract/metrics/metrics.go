package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the contract market.
type Metrics struct {
	ContractsCreated prometheus.Counter
	ResourcesCreated prometheus.Counter
	ContractValue    prometheus.Histogram
	PayloadWeight    prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ContractsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_contracts_created_total",
			Help: "Total number of contracts published",
		}),
		ResourcesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_resources_created_total",
			Help: "Total number of resources registered",
		}),
		ContractValue: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "federation_contract_value_credits",
			Help:    "Reward offered by newly created contracts",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
		PayloadWeight: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "federation_contract_payload_weight",
			Help:    "Total payload weight of newly created contracts",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func (m *Metrics) ObserveContractCreated(value float64, weight int64) {
	m.ContractsCreated.Inc()
	m.ContractValue.Observe(value)
	m.PayloadWeight.Observe(float64(weight))
}

func (m *Metrics) IncrementResourcesCreated() {
	m.ResourcesCreated.Inc()
}
