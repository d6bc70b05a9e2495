package models

import (
	"time"

	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

// Contract is a paid transport job between two planets. Its Status is never
// stored; it follows from ContracteeID and FulfilledAt.
type Contract struct {
	ID                  domain.ContractID `json:"id"`
	Description         string            `json:"description"`
	OriginPlanetID      domain.PlanetID   `json:"originPlanetId"`
	DestinationPlanetID domain.PlanetID   `json:"destinationPlanetId"`
	Value               amount.Amount     `json:"value"`
	ContracteeID        *domain.PilotID   `json:"contracteeId"`
	FulfilledAt         *time.Time        `json:"fulfilledAt"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

func (c *Contract) Status() Status {
	return DeriveStatus(c.ContracteeID, c.FulfilledAt)
}

// Accept moves an Open contract to In Effect.
func (c *Contract) Accept(pilotID domain.PilotID, now time.Time) {
	id := pilotID
	c.ContracteeID = &id
	c.UpdatedAt = now
}

// Fulfill moves an In Effect contract to Fulfilled.
func (c *Contract) Fulfill(now time.Time) {
	at := now
	c.FulfilledAt = &at
	c.UpdatedAt = now
}

// Resource is a weighted cargo item. ContractID is nil while the resource is
// available to be put in a payload.
type Resource struct {
	ID         domain.ResourceID  `json:"id"`
	Name       string             `json:"name"`
	Weight     int64              `json:"weight"`
	ContractID *domain.ContractID `json:"contractId"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func (r *Resource) Available() bool {
	return r.ContractID == nil
}

// PayloadWeight sums the weight of every resource.
func PayloadWeight(resources []*Resource) int64 {
	var total int64
	for _, r := range resources {
		total += r.Weight
	}
	return total
}

// View is a contract with its relations resolved, as returned by the API.
type View struct {
	*Contract
	Status            Status               `json:"status"`
	Payload           []*Resource          `json:"payload"`
	OriginPlanet      *planetmodels.Planet `json:"originPlanet"`
	DestinationPlanet *planetmodels.Planet `json:"destinationPlanet"`
}

// NewView resolves planets from byID; missing planets are left nil.
func NewView(c *Contract, payload []*Resource, byID map[domain.PlanetID]*planetmodels.Planet) *View {
	if payload == nil {
		payload = []*Resource{}
	}
	return &View{
		Contract:          c,
		Status:            c.Status(),
		Payload:           payload,
		OriginPlanet:      byID[c.OriginPlanetID],
		DestinationPlanet: byID[c.DestinationPlanetID],
	}
}
