package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the pilot lifecycle.
type Metrics struct {
	PilotsCreated      prometheus.Counter
	Operations         *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	FuelBurned         prometheus.Counter
	FuelBought         prometheus.Counter
	ContractsFulfilled prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PilotsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_pilots_created_total",
			Help: "Total number of pilots registered",
		}),
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "federation_pilot_operations_total",
			Help: "Pilot lifecycle operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "federation_pilot_operation_duration_seconds",
			Help:    "Duration of pilot lifecycle operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		FuelBurned: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_fuel_burned_total",
			Help: "Fuel units consumed by travel",
		}),
		FuelBought: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_fuel_bought_total",
			Help: "Fuel units bought through refuels",
		}),
		ContractsFulfilled: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_contracts_fulfilled_total",
			Help: "Contracts fulfilled on arrival",
		}),
	}
}

func (m *Metrics) IncrementPilotsCreated() {
	m.PilotsCreated.Inc()
}

// ObserveOperation records one operation started at start. outcome is
// "success", "rejected" or "error".
func (m *Metrics) ObserveOperation(operation, outcome string, start time.Time) {
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddFuelBurned(units int64) {
	m.FuelBurned.Add(float64(units))
}

func (m *Metrics) AddFuelBought(units int64) {
	m.FuelBought.Add(float64(units))
}

func (m *Metrics) AddContractsFulfilled(n int) {
	m.ContractsFulfilled.Add(float64(n))
}
