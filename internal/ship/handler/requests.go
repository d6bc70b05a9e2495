package handler

import (
	"math"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/schema"
)

const (
	CodeInvalidShipCreationData = "InvalidShipCreationData"
	msgInvalidShipCreationData  = "Invalid ship creation data!"
)

// CreateShipRequest is the body of POST /ships.
type CreateShipRequest struct {
	httputil.TypeMismatches

	FuelCapacity   *float64 `json:"fuelCapacity"`
	FuelLevel      *float64 `json:"fuelLevel"`
	WeightCapacity *float64 `json:"weightCapacity"`
	CurrentWeight  *float64 `json:"currentWeight"`

	cmd service.CreateShipCommand
}

// Validate checks every field. Levels are only compared against their
// capacity when the capacity itself is valid.
func (r *CreateShipRequest) Validate() error {
	c := dErrors.NewCollector(CodeInvalidShipCreationData, msgInvalidShipCreationData)
	k := schema.New(c, &r.TypeMismatches)

	fuelCapacity, fuelCapacityOK := k.Int("fuelCapacity", r.FuelCapacity, 1, math.MaxInt32)
	fuelLevel, fuelLevelOK := k.Int("fuelLevel", r.FuelLevel, 0, math.MaxInt32)
	if fuelCapacityOK && fuelLevelOK {
		k.Max("fuelLevel", fuelLevel, "fuelCapacity", fuelCapacity)
	}

	weightCapacity, weightCapacityOK := k.Int("weightCapacity", r.WeightCapacity, 1, math.MaxInt32)
	currentWeight, currentWeightOK := k.Int("currentWeight", r.CurrentWeight, 0, math.MaxInt32)
	if weightCapacityOK && currentWeightOK {
		k.Max("currentWeight", currentWeight, "weightCapacity", weightCapacity)
	}

	if err := c.Err(); err != nil {
		return err
	}
	r.cmd = service.CreateShipCommand{
		FuelCapacity:   fuelCapacity,
		FuelLevel:      fuelLevel,
		WeightCapacity: weightCapacity,
		CurrentWeight:  currentWeight,
	}
	return nil
}

// Command returns the validated command; call after Validate succeeded.
func (r *CreateShipRequest) Command() service.CreateShipCommand {
	return r.cmd
}
