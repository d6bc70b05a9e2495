package models

import (
	"errors"
	"time"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	shipmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

// ErrInsufficientCredits is returned by Debit when the balance would go negative.
var ErrInsufficientCredits = errors.New("insufficient credits")

// Pilot is a certified pilot. ShipID is nil until the pilot owns a ship; a
// ship has at most one owner.
type Pilot struct {
	ID                domain.PilotID  `json:"id"`
	Certification     string          `json:"certification"`
	Name              string          `json:"name"`
	Age               int64           `json:"age"`
	Credits           amount.Amount   `json:"credits"`
	CurrentLocationID domain.PlanetID `json:"currentLocationId"`
	ShipID            *domain.ShipID  `json:"shipId"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (p *Pilot) HasShip() bool {
	return p.ShipID != nil
}

func (p *Pilot) CanAfford(cost amount.Amount) bool {
	return p.Credits.GreaterThanOrEqual(cost)
}

// Debit takes cost from the pilot's credits, never below zero.
func (p *Pilot) Debit(cost amount.Amount, now time.Time) error {
	if !p.CanAfford(cost) {
		return ErrInsufficientCredits
	}
	p.Credits = p.Credits.Sub(cost)
	p.UpdatedAt = now
	return nil
}

func (p *Pilot) Credit(value amount.Amount, now time.Time) {
	p.Credits = p.Credits.Add(value)
	p.UpdatedAt = now
}

func (p *Pilot) MoveTo(planetID domain.PlanetID, now time.Time) {
	p.CurrentLocationID = planetID
	p.UpdatedAt = now
}

// Refill is one fuel purchase: Amount units for Cost credits.
type Refill struct {
	ID        domain.RefillID `json:"id"`
	PilotID   domain.PilotID  `json:"pilotId"`
	Amount    int64           `json:"amount"`
	Cost      amount.Amount   `json:"cost"`
	CreatedAt time.Time       `json:"createdAt"`
}

// View is a pilot with ship and location resolved, as returned by the API.
type View struct {
	*Pilot
	Ship            *shipmodels.Ship     `json:"ship"`
	CurrentLocation *planetmodels.Planet `json:"currentLocation"`
}

// AcceptedContract is a contract together with the pilot who accepted it.
type AcceptedContract struct {
	*contractmodels.View
	Contractee *View `json:"contractee"`
}
