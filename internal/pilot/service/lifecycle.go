package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	shipmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// lockPilot locks the pilot and, when it has one, its ship. A missing pilot
// or a pilot without a ship becomes an entry on v.
func (s *Service) lockPilot(ctx context.Context, v *dErrors.Collector, id domain.PilotID) (*models.Pilot, *shipmodels.Ship, error) {
	pilot, err := s.stores.Pilots.FindByIDForUpdate(ctx, id)
	ok, err := present(v, err, CodePilotNotFound, "There is no pilot associated with this id %q!", id.String())
	if err != nil || !ok {
		return nil, nil, err
	}
	if !pilot.HasShip() {
		v.Add(CodePilotHasNoShip, "Pilot %q has no ship!", id.String())
		return pilot, nil, nil
	}
	ship, err := s.stores.Ships.FindByIDForUpdate(ctx, *pilot.ShipID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lock pilot ship")
	}
	return pilot, ship, nil
}

// Travel flies the pilot to an adjacent planet, burning the route's fuel and
// fulfilling every contract the pilot holds for exactly that leg.
func (s *Service) Travel(ctx context.Context, pilotID domain.PilotID, cmd TravelCommand) (*models.View, error) {
	ctx, span := s.tracer.Start(ctx, "pilot.Travel", trace.WithAttributes(
		attribute.String("pilot.id", pilotID.String()),
		attribute.String("planet.destination", cmd.DestinationPlanetID.String()),
	))
	defer span.End()
	start := time.Now()
	now := requestcontext.Now(ctx)

	var (
		pilot     *models.Pilot
		ship      *shipmodels.Ship
		fulfilled int
		burned    int64
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v := dErrors.NewCollector(CodeInvalidTravelData, msgInvalidTravelData)

		var err error
		pilot, ship, err = s.lockPilot(ctx, v, pilotID)
		if err != nil {
			return err
		}

		_, err = s.stores.Planets.FindByID(ctx, cmd.DestinationPlanetID)
		destinationOK, err := present(v, err, CodePlanetNotFound, "There is no planet associated with this id %q!", cmd.DestinationPlanetID.String())
		if err != nil {
			return err
		}

		var route *planetmodels.Route
		if pilot != nil && destinationOK {
			route, err = s.route(ctx, v, pilot.CurrentLocationID, cmd.DestinationPlanetID)
			if err != nil {
				return err
			}
		}
		if route != nil && ship != nil && !ship.CanBurn(route.FuelConsumption) {
			v.Add(CodeNotEnoughFuel, "Ship has %d fuel but the trip needs %d!", ship.FuelLevel, route.FuelConsumption)
		}
		if err := v.Err(); err != nil {
			return err
		}

		origin := pilot.CurrentLocationID
		ship.Burn(route.FuelConsumption, now)
		pilot.MoveTo(cmd.DestinationPlanetID, now)
		burned = route.FuelConsumption

		fulfilled, err = s.fulfillLeg(ctx, pilot, ship, origin, now)
		if err != nil {
			return err
		}

		if err := s.stores.Pilots.Update(ctx, pilot); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save pilot")
		}
		if err := s.stores.Ships.Update(ctx, ship); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save ship")
		}
		return s.events.Record(ctx, events.AggregatePilot, uuid.UUID(pilot.ID), events.TypePilotTravelled, map[string]any{
			"pilotId":             pilot.ID,
			"originPlanetId":      origin,
			"destinationPlanetId": cmd.DestinationPlanetID,
			"fuelConsumption":     route.FuelConsumption,
			"contractsFulfilled":  fulfilled,
		})
	})
	s.observe(span, "travel", start, err)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("contracts.fulfilled", fulfilled))
	if s.metrics != nil {
		s.metrics.AddFuelBurned(burned)
		s.metrics.AddContractsFulfilled(fulfilled)
	}
	s.logger.InfoContext(ctx, "pilot travelled",
		"event", events.TypePilotTravelled,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"pilot_id", pilot.ID,
		"destination_planet_id", cmd.DestinationPlanetID,
		"contracts_fulfilled", fulfilled,
	)
	return s.view(ctx, pilot, ship)
}

// route resolves the directed edge origin -> destination.
func (s *Service) route(ctx context.Context, v *dErrors.Collector, origin, destination domain.PlanetID) (*planetmodels.Route, error) {
	if origin == destination {
		v.Add(CodeOriginAndDestinationAreEqual, "Origin and destination planets must be different!")
		return nil, nil
	}
	route, err := s.stores.Planets.FindRoute(ctx, origin, destination)
	ok, err := present(v, err, CodeTravelImpossible, "There is no route from %q to %q!", origin.String(), destination.String())
	if err != nil || !ok {
		return nil, err
	}
	return route, nil
}

// fulfillLeg settles the pilot's In Effect contracts for origin -> current
// location: credits the value, unloads the payload and stamps fulfilledAt.
func (s *Service) fulfillLeg(ctx context.Context, pilot *models.Pilot, ship *shipmodels.Ship, origin domain.PlanetID, now time.Time) (int, error) {
	contracts, err := s.stores.Contracts.ListInEffectForLegForUpdate(ctx, pilot.ID, origin, pilot.CurrentLocationID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load contracts in effect")
	}
	if len(contracts) == 0 {
		return 0, nil
	}

	ids := make([]domain.ContractID, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}
	payloads, err := s.stores.Resources.ListByContracts(ctx, ids)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payloads")
	}

	for _, c := range contracts {
		pilot.Credit(c.Value, now)
		ship.Unload(contractmodels.PayloadWeight(payloads[c.ID]), now)
		c.Fulfill(now)
		if err := s.stores.Contracts.Update(ctx, c); err != nil {
			return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save contract")
		}
		if err := s.events.Record(ctx, events.AggregateContract, uuid.UUID(c.ID), events.TypeContractFulfilled, map[string]any{
			"contractId": c.ID,
			"pilotId":    pilot.ID,
			"value":      c.Value,
		}); err != nil {
			return 0, err
		}
	}
	return len(contracts), nil
}

// Refuel buys fuel at the configured unit cost.
func (s *Service) Refuel(ctx context.Context, pilotID domain.PilotID, cmd RefuelCommand) (*models.View, error) {
	ctx, span := s.tracer.Start(ctx, "pilot.Refuel", trace.WithAttributes(
		attribute.String("pilot.id", pilotID.String()),
		attribute.Float64("refuel.amount", cmd.Amount),
	))
	defer span.End()
	start := time.Now()
	now := requestcontext.Now(ctx)

	var (
		pilot  *models.Pilot
		ship   *shipmodels.Ship
		refill *models.Refill
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v := dErrors.NewCollector(CodeInvalidRefuelData, msgInvalidRefuelData)

		units, ok := cmd.units()
		if !ok {
			v.Add(CodeInvalidRefuelAmount, "Refuel amount must be a positive integer, got %s!", strconv.FormatFloat(cmd.Amount, 'f', -1, 64))
			_, err := s.stores.Pilots.FindByID(ctx, pilotID)
			if _, err := present(v, err, CodePilotNotFound, "There is no pilot associated with this id %q!", pilotID.String()); err != nil {
				return err
			}
			return v.Err()
		}

		var err error
		pilot, ship, err = s.lockPilot(ctx, v, pilotID)
		if err != nil {
			return err
		}

		cost := s.refuelCost.MulInt(units)
		if pilot != nil && !pilot.CanAfford(cost) {
			v.Add(CodeInsufficientCredits, "Refueling %d units costs %s credits but the pilot has %s!", units, cost, pilot.Credits)
		}
		if ship != nil && units > ship.FreeFuelCapacity() {
			v.Add(CodeFuelOverflow, "Refueling %d units would exceed the ship fuel capacity by %d!", units, units-ship.FreeFuelCapacity())
		}
		if err := v.Err(); err != nil {
			return err
		}

		if err := pilot.Debit(cost, now); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to debit pilot")
		}
		ship.Refuel(units, now)
		refill = &models.Refill{
			ID:        domain.RefillID(uuid.New()),
			PilotID:   pilot.ID,
			Amount:    units,
			Cost:      cost,
			CreatedAt: now,
		}

		if err := s.stores.Pilots.Update(ctx, pilot); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save pilot")
		}
		if err := s.stores.Ships.Update(ctx, ship); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save ship")
		}
		if err := s.stores.Refills.Create(ctx, refill); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save refill")
		}
		return s.events.Record(ctx, events.AggregatePilot, uuid.UUID(pilot.ID), events.TypePilotRefueled, refill)
	})
	s.observe(span, "refuel", start, err)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AddFuelBought(refill.Amount)
	}
	s.logger.InfoContext(ctx, "pilot refueled",
		"event", events.TypePilotRefueled,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"pilot_id", pilot.ID,
		"amount", refill.Amount,
		"cost", refill.Cost.String(),
	)
	return s.view(ctx, pilot, ship)
}

// AcceptContract assigns an Open contract to the pilot and loads its payload
// onto the pilot's ship.
func (s *Service) AcceptContract(ctx context.Context, pilotID domain.PilotID, cmd AcceptContractCommand) (*models.AcceptedContract, error) {
	ctx, span := s.tracer.Start(ctx, "pilot.AcceptContract", trace.WithAttributes(
		attribute.String("pilot.id", pilotID.String()),
		attribute.String("contract.id", cmd.ContractID.String()),
	))
	defer span.End()
	start := time.Now()
	now := requestcontext.Now(ctx)

	var (
		pilot    *models.Pilot
		ship     *shipmodels.Ship
		contract *contractmodels.Contract
		payload  []*contractmodels.Resource
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v := dErrors.NewCollector(CodeInvalidContractAcceptanceData, msgInvalidContractAcceptanceData)

		var err error
		pilot, ship, err = s.lockPilot(ctx, v, pilotID)
		if err != nil {
			return err
		}

		contract, err = s.stores.Contracts.FindByIDForUpdate(ctx, cmd.ContractID)
		contractOK, err := present(v, err, CodeContractNotFound, "There is no contract associated with this id %q!", cmd.ContractID.String())
		if err != nil {
			return err
		}

		var weight int64
		if contractOK {
			switch contract.Status() {
			case contractmodels.StatusFulfilled:
				v.Add(CodeContractAlreadyFulfilled, "Contract %q is already fulfilled!", cmd.ContractID.String())
			case contractmodels.StatusInEffect:
				v.Add(CodeContractAlreadyAccepted, "Contract %q was already accepted!", cmd.ContractID.String())
			}
			if pilot != nil && pilot.CurrentLocationID != contract.OriginPlanetID {
				v.Add(CodePilotCurrentLocationAndContractOriginPlanetMismatch,
					"Pilot must be at the contract origin planet %q to accept it!", contract.OriginPlanetID.String())
			}

			payloads, err := s.stores.Resources.ListByContracts(ctx, []domain.ContractID{contract.ID})
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payload")
			}
			payload = payloads[contract.ID]
			weight = contractmodels.PayloadWeight(payload)
			if ship != nil && !ship.CanLoad(weight) {
				v.Add(CodeContractPayloadTooHeavy, "Contract payload weighs %d but the ship can only take %d more!", weight, ship.FreeWeightCapacity())
			}
		}
		if err := v.Err(); err != nil {
			return err
		}

		ship.Load(weight, now)
		contract.Accept(pilot.ID, now)
		if err := s.stores.Ships.Update(ctx, ship); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save ship")
		}
		if err := s.stores.Contracts.Update(ctx, contract); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save contract")
		}
		return s.events.Record(ctx, events.AggregateContract, uuid.UUID(contract.ID), events.TypeContractAccepted, map[string]any{
			"contractId":    contract.ID,
			"pilotId":       pilot.ID,
			"payloadWeight": weight,
		})
	})
	s.observe(span, "accept_contract", start, err)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "contract accepted",
		"event", events.TypeContractAccepted,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"pilot_id", pilot.ID,
		"contract_id", contract.ID,
	)

	contractee, err := s.view(ctx, pilot, ship)
	if err != nil {
		return nil, err
	}
	planets, err := s.stores.Planets.ListPlanets(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list planets")
	}
	byID := make(map[domain.PlanetID]*planetmodels.Planet, len(planets))
	for _, p := range planets {
		byID[p.ID] = p
	}
	return &models.AcceptedContract{
		View:       contractmodels.NewView(contract, payload, byID),
		Contractee: contractee,
	}, nil
}
