package models

import (
	"time"

	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

// Ship carries fuel and cargo for at most one pilot.
//
// Invariants: 0 <= FuelLevel <= FuelCapacity and
// 0 <= CurrentWeight <= WeightCapacity.
type Ship struct {
	ID             domain.ShipID `json:"id"`
	FuelCapacity   int64         `json:"fuelCapacity"`
	FuelLevel      int64         `json:"fuelLevel"`
	WeightCapacity int64         `json:"weightCapacity"`
	CurrentWeight  int64         `json:"currentWeight"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// FreeFuelCapacity is how much fuel still fits in the tank.
func (s *Ship) FreeFuelCapacity() int64 {
	return s.FuelCapacity - s.FuelLevel
}

// FreeWeightCapacity is how much cargo weight still fits.
func (s *Ship) FreeWeightCapacity() int64 {
	return s.WeightCapacity - s.CurrentWeight
}

func (s *Ship) CanBurn(fuel int64) bool {
	return fuel <= s.FuelLevel
}

func (s *Ship) CanLoad(weight int64) bool {
	return weight <= s.FreeWeightCapacity()
}

// Burn removes fuel; callers check CanBurn first.
func (s *Ship) Burn(fuel int64, now time.Time) {
	s.FuelLevel -= fuel
	s.UpdatedAt = now
}

// Refuel adds fuel; callers check FreeFuelCapacity first.
func (s *Ship) Refuel(amount int64, now time.Time) {
	s.FuelLevel += amount
	s.UpdatedAt = now
}

func (s *Ship) Load(weight int64, now time.Time) {
	s.CurrentWeight += weight
	s.UpdatedAt = now
}

// Unload drops delivered cargo, never below zero.
func (s *Ship) Unload(weight int64, now time.Time) {
	s.CurrentWeight = max(s.CurrentWeight-weight, 0)
	s.UpdatedAt = now
}
