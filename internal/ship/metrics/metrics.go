package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks ship registrations.
type Metrics struct {
	ShipsCreated       prometheus.Counter
	CreateShipDuration prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ShipsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "federation_ships_created_total",
			Help: "Total number of ships registered",
		}),
		CreateShipDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "federation_create_ship_duration_seconds",
			Help:    "Duration of CreateShip operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementShipsCreated() {
	m.ShipsCreated.Inc()
}

// ObserveCreateShip records the duration of a CreateShip call started at start.
func (m *Metrics) ObserveCreateShip(start time.Time) {
	m.CreateShipDuration.Observe(time.Since(start).Seconds())
}
