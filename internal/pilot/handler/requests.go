package handler

import (
	"math"
	"regexp"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/schema"
)

const (
	msgInvalidPilotCreationData      = "Invalid pilot creation data!"
	msgInvalidTravelData             = "Invalid travel data!"
	msgInvalidRefuelData             = "Invalid refuel data!"
	msgInvalidContractAcceptanceData = "Invalid contract acceptance data!"

	minPilotAge = 18
)

var (
	certificationPattern = regexp.MustCompile(`^\d{7}$`)
	pilotNamePattern     = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// CreatePilotRequest is the body of POST /pilots.
type CreatePilotRequest struct {
	httputil.TypeMismatches

	Certification     *string  `json:"certification"`
	Name              *string  `json:"name"`
	Age               *float64 `json:"age"`
	Credits           *string  `json:"credits"`
	CurrentLocationID *string  `json:"currentLocationId"`
	ShipID            *string  `json:"shipId"`

	cmd service.CreatePilotCommand
}

func (r *CreatePilotRequest) Validate() error {
	c := dErrors.NewCollector(service.CodeInvalidPilotCreationData, msgInvalidPilotCreationData)
	k := schema.New(c, &r.TypeMismatches)

	certification, ok := k.String("certification", r.Certification, 0)
	if ok {
		k.Pattern("certification", certification, certificationPattern)
	}
	name, ok := k.String("name", r.Name, 0)
	if ok {
		k.Pattern("name", name, pilotNamePattern)
	}
	age, _ := k.Int("age", r.Age, minPilotAge, math.MaxInt32)
	credits, _ := k.Amount("credits", r.Credits)
	location, _ := k.ID("currentLocationId", r.CurrentLocationID, true)
	shipID, _ := k.ID("shipId", r.ShipID, false)

	if err := c.Err(); err != nil {
		return err
	}
	r.cmd = service.CreatePilotCommand{
		Certification:     certification,
		Name:              name,
		Age:               age,
		Credits:           credits,
		CurrentLocationID: domain.PlanetID(location),
	}
	if r.ShipID != nil {
		id := domain.ShipID(shipID)
		r.cmd.ShipID = &id
	}
	return nil
}

func (r *CreatePilotRequest) Command() service.CreatePilotCommand {
	return r.cmd
}

// TravelRequest is the body of PUT /pilots/{id}/travel.
type TravelRequest struct {
	httputil.TypeMismatches

	DestinationPlanetID *string `json:"destinationPlanetId"`

	cmd service.TravelCommand
}

func (r *TravelRequest) Validate() error {
	c := dErrors.NewCollector(service.CodeInvalidTravelData, msgInvalidTravelData)
	destination, _ := schema.New(c, &r.TypeMismatches).ID("destinationPlanetId", r.DestinationPlanetID, true)
	if err := c.Err(); err != nil {
		return err
	}
	r.cmd = service.TravelCommand{DestinationPlanetID: domain.PlanetID(destination)}
	return nil
}

func (r *TravelRequest) Command() service.TravelCommand {
	return r.cmd
}

// RefuelRequest is the body of PUT /pilots/{id}/refuel. Only presence and
// type of amount are checked here; any number that is not a positive integer
// is reported by the service as InvalidRefuelAmount.
type RefuelRequest struct {
	httputil.TypeMismatches

	Amount *float64 `json:"amount"`

	cmd service.RefuelCommand
}

func (r *RefuelRequest) Validate() error {
	c := dErrors.NewCollector(service.CodeInvalidRefuelData, msgInvalidRefuelData)
	amount, _ := schema.New(c, &r.TypeMismatches).Number("amount", r.Amount)
	if err := c.Err(); err != nil {
		return err
	}
	r.cmd = service.RefuelCommand{Amount: amount}
	return nil
}

func (r *RefuelRequest) Command() service.RefuelCommand {
	return r.cmd
}

// AcceptContractRequest is the body of PUT /pilots/{id}/acceptContract.
type AcceptContractRequest struct {
	httputil.TypeMismatches

	ContractID *string `json:"contractId"`

	cmd service.AcceptContractCommand
}

func (r *AcceptContractRequest) Validate() error {
	c := dErrors.NewCollector(service.CodeInvalidContractAcceptanceData, msgInvalidContractAcceptanceData)
	id, _ := schema.New(c, &r.TypeMismatches).ID("contractId", r.ContractID, true)
	if err := c.Err(); err != nil {
		return err
	}
	r.cmd = service.AcceptContractCommand{ContractID: domain.ContractID(id)}
	return nil
}

func (r *AcceptContractRequest) Command() service.AcceptContractCommand {
	return r.cmd
}
