package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

// Planet is immutable reference data loaded from the universe seed.
type Planet struct {
	ID        domain.PlanetID `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Route is a directed travel edge. Its absence means travel between the two
// planets is impossible.
type Route struct {
	OriginPlanetID      domain.PlanetID `json:"originPlanetId"`
	DestinationPlanetID domain.PlanetID `json:"destinationPlanetId"`
	FuelConsumption     int64           `json:"fuelConsumption"`
}

// RouteKey identifies a Route by its ordered endpoints.
type RouteKey struct {
	Origin      domain.PlanetID
	Destination domain.PlanetID
}

func (r Route) Key() RouteKey {
	return RouteKey{Origin: r.OriginPlanetID, Destination: r.DestinationPlanetID}
}

// planetNamespace scopes the name-derived planet IDs.
var planetNamespace = uuid.MustParse("5b1f6c8e-3d2a-4c7e-9f10-6a1b2c3d4e5f")

// PlanetIDFor derives a stable ID from the planet name, so every environment
// seeded from the same universe agrees on planet IDs.
func PlanetIDFor(name string) domain.PlanetID {
	return domain.PlanetID(uuid.NewSHA1(planetNamespace, []byte(name)))
}
