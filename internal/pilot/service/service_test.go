package service_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks PilotStore,RefillStore,ShipStore,PlanetStore,ContractStore,ResourceStore,EventRecorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	contractservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service"
	contractstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	eventstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/service/mocks"
	pilotstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/store"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	planetstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store/seed"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	shipmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	shipservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service"
	shipstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

var (
	andvari = planetmodels.PlanetIDFor("Andvari")
	aqua    = planetmodels.PlanetIDFor("Aqua")
	calas   = planetmodels.PlanetIDFor("Calas")
	demeter = planetmodels.PlanetIDFor("Demeter")
)

type PilotServiceSuite struct {
	suite.Suite
	planets   *planetstore.InMemoryStore
	ships     *shipstore.InMemoryStore
	pilots    *pilotstore.InMemoryPilotStore
	refills   *pilotstore.InMemoryRefillStore
	contracts *contractstore.InMemoryContractStore
	resources *contractstore.InMemoryResourceStore
	outbox    *eventstore.InMemoryStore
	metrics   *metrics.Metrics

	shipService     *shipservice.Service
	contractService *contractservice.Service
	service         *service.Service

	ctx context.Context
	now time.Time
}

func TestPilotServiceSuite(t *testing.T) {
	suite.Run(t, new(PilotServiceSuite))
}

func (s *PilotServiceSuite) SetupTest() {
	s.planets = planetstore.NewInMemory()
	u, err := seed.Default()
	s.Require().NoError(err)
	s.Require().NoError(u.Apply(context.Background(), s.planets, time.Now()))

	s.ships = shipstore.NewInMemory()
	s.pilots = pilotstore.NewInMemoryPilotStore()
	s.refills = pilotstore.NewInMemoryRefillStore()
	s.contracts = contractstore.NewInMemoryContractStore()
	s.resources = contractstore.NewInMemoryResourceStore()
	s.outbox = eventstore.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())

	tx := database.NewMemoryTx(0)
	recorder := events.NewRecorder(s.outbox)
	s.shipService = shipservice.New(s.ships, tx, recorder)
	s.contractService = contractservice.New(s.contracts, s.resources, s.planets, tx, recorder)
	s.service = service.New(service.Stores{
		Pilots:    s.pilots,
		Refills:   s.refills,
		Ships:     s.ships,
		Planets:   s.planets,
		Contracts: s.contracts,
		Resources: s.resources,
	}, tx, recorder,
		service.WithMetrics(s.metrics),
		service.WithTracer(noop.NewTracerProvider().Tracer("pilot-test")),
	)

	s.now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *PilotServiceSuite) ship(fuelLevel, currentWeight int64) domain.ShipID {
	ship, err := s.shipService.CreateShip(s.ctx, shipservice.CreateShipCommand{
		FuelCapacity: 200, FuelLevel: fuelLevel, WeightCapacity: 500, CurrentWeight: currentWeight,
	})
	s.Require().NoError(err)
	return ship.ID
}

func (s *PilotServiceSuite) pilot(cert string, ship *domain.ShipID, credits string) *models.View {
	p, err := s.service.CreatePilot(s.ctx, service.CreatePilotCommand{
		Certification:     cert,
		Name:              "Han Solo",
		Age:               32,
		Credits:           amount.MustParse(credits),
		CurrentLocationID: andvari,
		ShipID:            ship,
	})
	s.Require().NoError(err)
	return p
}

func (s *PilotServiceSuite) contract(origin, destination domain.PlanetID, value string, weights ...int64) *contractmodels.View {
	ids := make([]domain.ResourceID, 0, len(weights))
	for _, w := range weights {
		r, err := s.contractService.CreateResource(s.ctx, contractservice.CreateResourceCommand{Name: "ore", Weight: w})
		s.Require().NoError(err)
		ids = append(ids, r.ID)
	}
	c, err := s.contractService.CreateContract(s.ctx, contractservice.CreateContractCommand{
		Description:         "Ore run",
		PayloadIDs:          ids,
		OriginPlanetID:      origin,
		DestinationPlanetID: destination,
		Value:               amount.MustParse(value),
	})
	s.Require().NoError(err)
	return c
}

func (s *PilotServiceSuite) assertEntries(err error, code string, entries ...string) {
	var verr *dErrors.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(code, verr.Code)
	got := make([]string, 0, len(verr.Entries))
	for _, e := range verr.Entries {
		got = append(got, e.Code)
	}
	s.ElementsMatch(entries, got)
}

func (s *PilotServiceSuite) TestCreatePilot() {
	shipID := s.ship(50, 0)
	p := s.pilot("1234566", &shipID, "100000")

	s.Require().NotNil(p.Ship)
	s.Equal(shipID, p.Ship.ID)
	s.Require().NotNil(p.CurrentLocation)
	s.Equal("Andvari", p.CurrentLocation.Name)
	s.Equal(s.now, p.CreatedAt)
	s.Contains(s.outbox.Types(), events.TypePilotCreated)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.PilotsCreated))
}

func (s *PilotServiceSuite) TestCreatePilotAccumulatesEntries() {
	shipID := s.ship(50, 0)
	s.pilot("1234566", &shipID, "1")

	_, err := s.service.CreatePilot(s.ctx, service.CreatePilotCommand{
		Certification:     "1234566",
		Name:              "Leia",
		Age:               20,
		Credits:           amount.Zero(),
		CurrentLocationID: domain.PlanetID(uuid.New()),
		ShipID:            &shipID,
	})
	s.assertEntries(err, service.CodeInvalidPilotCreationData,
		service.CodeShipAlreadyHasOwner, service.CodePlanetNotFound, service.CodeCertificationAlreadyExists)

	missing := domain.ShipID(uuid.New())
	_, err = s.service.CreatePilot(s.ctx, service.CreatePilotCommand{
		Certification:     "1234567",
		Name:              "Leia",
		Age:               20,
		Credits:           amount.Zero(),
		CurrentLocationID: andvari,
		ShipID:            &missing,
	})
	s.assertEntries(err, service.CodeInvalidPilotCreationData,
		service.CodeInvalidPilotCertificationChecksum, service.CodeShipNotFound)
}

func (s *PilotServiceSuite) TestGetPilot() {
	created := s.pilot("1234566", nil, "10")

	got, err := s.service.GetPilot(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(got.Ship)
	s.Equal("Andvari", got.CurrentLocation.Name)

	_, err = s.service.GetPilot(s.ctx, domain.PilotID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *PilotServiceSuite) TestTravelBurnsFuelAndMoves() {
	shipID := s.ship(50, 0)
	p := s.pilot("1234566", &shipID, "100000")

	moved, err := s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: aqua})
	s.Require().NoError(err)
	s.Equal(int64(37), moved.Ship.FuelLevel)
	s.Equal(aqua, moved.CurrentLocationID)
	s.Equal("Aqua", moved.CurrentLocation.Name)
	s.Equal("100000", moved.Credits.String())
	s.Equal(float64(13), testutil.ToFloat64(s.metrics.FuelBurned))
}

func (s *PilotServiceSuite) TestTravelFulfillsContractsForTheLeg() {
	shipID := s.ship(100, 0)
	p := s.pilot("1234566", &shipID, "10")

	leg := s.contract(andvari, aqua, "120.5", 30, 20)
	other := s.contract(andvari, calas, "99", 5)
	_, err := s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: leg.ID})
	s.Require().NoError(err)
	_, err = s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: other.ID})
	s.Require().NoError(err)

	moved, err := s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: aqua})
	s.Require().NoError(err)
	s.Equal("130.5", moved.Credits.String())
	s.Equal(int64(5), moved.Ship.CurrentWeight, "only the leg's payload is unloaded")

	fulfilled, err := s.contracts.FindByID(s.ctx, leg.ID)
	s.Require().NoError(err)
	s.Equal(contractmodels.StatusFulfilled, fulfilled.Status())
	s.Equal(s.now, *fulfilled.FulfilledAt)

	pending, err := s.contracts.FindByID(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Equal(contractmodels.StatusInEffect, pending.Status())
	s.Contains(s.outbox.Types(), events.TypeContractFulfilled)
}

func (s *PilotServiceSuite) TestTravelRejections() {
	shipID := s.ship(10, 0)
	p := s.pilot("1234566", &shipID, "10")
	shipless := s.pilot("1000009", nil, "10")

	_, err := s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: aqua})
	s.assertEntries(err, service.CodeInvalidTravelData, service.CodeNotEnoughFuel)

	_, err = s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: andvari})
	s.assertEntries(err, service.CodeInvalidTravelData, service.CodeOriginAndDestinationAreEqual)

	_, err = s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: demeter})
	s.assertEntries(err, service.CodeInvalidTravelData, service.CodeTravelImpossible)

	_, err = s.service.Travel(s.ctx, shipless.ID, service.TravelCommand{DestinationPlanetID: domain.PlanetID(uuid.New())})
	s.assertEntries(err, service.CodeInvalidTravelData, service.CodePilotHasNoShip, service.CodePlanetNotFound)

	_, err = s.service.Travel(s.ctx, domain.PilotID(uuid.New()), service.TravelCommand{DestinationPlanetID: aqua})
	s.assertEntries(err, service.CodeInvalidTravelData, service.CodePilotNotFound)

	unchanged, err := s.ships.FindByID(s.ctx, shipID)
	s.Require().NoError(err)
	s.Equal(int64(10), unchanged.FuelLevel)
}

func (s *PilotServiceSuite) TestRefuel() {
	shipID := s.ship(100, 0)
	p := s.pilot("1234566", &shipID, "1000")

	refueled, err := s.service.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: 50})
	s.Require().NoError(err)
	s.Equal("650", refueled.Credits.String())
	s.Equal(int64(150), refueled.Ship.FuelLevel)

	refills, err := s.refills.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(refills, 1)
	s.Equal("350", refills[0].Cost.String())
	s.Equal(s.now, refills[0].CreatedAt)
}

func (s *PilotServiceSuite) TestRefuelRejections() {
	shipID := s.ship(190, 0)
	p := s.pilot("1234566", &shipID, "10")

	_, err := s.service.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: 11})
	s.assertEntries(err, service.CodeInvalidRefuelData, service.CodeInsufficientCredits, service.CodeFuelOverflow)

	_, err = s.service.Refuel(s.ctx, domain.PilotID(uuid.New()), service.RefuelCommand{Amount: 0})
	s.assertEntries(err, service.CodeInvalidRefuelData, service.CodeInvalidRefuelAmount, service.CodePilotNotFound)

	_, err = s.service.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: -3})
	s.assertEntries(err, service.CodeInvalidRefuelData, service.CodeInvalidRefuelAmount)

	_, err = s.service.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: 2.5})
	s.assertEntries(err, service.CodeInvalidRefuelData, service.CodeInvalidRefuelAmount)

	_, err = s.service.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: 1e20})
	s.assertEntries(err, service.CodeInvalidRefuelData, service.CodeInsufficientCredits, service.CodeFuelOverflow)

	stored, err := s.pilots.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("10", stored.Credits.String())
}

func (s *PilotServiceSuite) TestRefuelWithCustomCost() {
	shipID := s.ship(0, 0)
	p := s.pilot("1234566", &shipID, "10")
	svc := service.New(service.Stores{
		Pilots: s.pilots, Refills: s.refills, Ships: s.ships, Planets: s.planets,
	}, database.NewMemoryTx(0), events.NewRecorder(s.outbox), service.WithRefuelCost(amount.MustParse("0.25")))

	refueled, err := svc.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: 40})
	s.Require().NoError(err)
	s.True(refueled.Credits.IsZero())
	s.Equal(int64(40), refueled.Ship.FuelLevel)
}

func (s *PilotServiceSuite) TestAcceptContract() {
	shipID := s.ship(100, 10)
	p := s.pilot("1234566", &shipID, "10")
	c := s.contract(andvari, aqua, "50", 40)

	accepted, err := s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: c.ID})
	s.Require().NoError(err)
	s.Equal(contractmodels.StatusInEffect, accepted.Status)
	s.Require().NotNil(accepted.Contractee)
	s.Equal(p.ID, accepted.Contractee.ID)
	s.Equal(int64(50), accepted.Contractee.Ship.CurrentWeight)
	s.Len(accepted.Payload, 1)
	s.Equal("Aqua", accepted.DestinationPlanet.Name)

	_, err = s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: c.ID})
	s.assertEntries(err, service.CodeInvalidContractAcceptanceData, service.CodeContractAlreadyAccepted)
}

func (s *PilotServiceSuite) TestAcceptContractRejections() {
	shipID := s.ship(100, 490)
	p := s.pilot("1234566", &shipID, "10")
	heavyElsewhere := s.contract(calas, aqua, "50", 20)

	_, err := s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: heavyElsewhere.ID})
	s.assertEntries(err, service.CodeInvalidContractAcceptanceData,
		service.CodePilotCurrentLocationAndContractOriginPlanetMismatch, service.CodeContractPayloadTooHeavy)

	shipless := s.pilot("1000009", nil, "10")
	_, err = s.service.AcceptContract(s.ctx, shipless.ID, service.AcceptContractCommand{ContractID: domain.ContractID(uuid.New())})
	s.assertEntries(err, service.CodeInvalidContractAcceptanceData, service.CodePilotHasNoShip, service.CodeContractNotFound)

	unchanged, err := s.ships.FindByID(s.ctx, shipID)
	s.Require().NoError(err)
	s.Equal(int64(490), unchanged.CurrentWeight)
}

func (s *PilotServiceSuite) TestFulfilledContractCannotBeAcceptedAgain() {
	shipID := s.ship(100, 0)
	p := s.pilot("1234566", &shipID, "0")
	c := s.contract(andvari, aqua, "10", 1)

	_, err := s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: c.ID})
	s.Require().NoError(err)
	_, err = s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: aqua})
	s.Require().NoError(err)
	_, err = s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: calas})
	s.Require().NoError(err)
	_, err = s.service.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: andvari})
	s.Require().NoError(err)

	_, err = s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: c.ID})
	s.assertEntries(err, service.CodeInvalidContractAcceptanceData, service.CodeContractAlreadyFulfilled)
}

// failingShipStore wraps a real ship store and fails every write.
type failingShipStore struct {
	service.ShipStore
	err error
}

func (f failingShipStore) Update(context.Context, *shipmodels.Ship) error {
	return f.err
}

func (s *PilotServiceSuite) TestTravel_ShipSaveFailureRollsBack() {
	shipID := s.ship(100, 0)
	p := s.pilot("1234566", &shipID, "10")
	c := s.contract(andvari, aqua, "50", 40)
	_, err := s.service.AcceptContract(s.ctx, p.ID, service.AcceptContractCommand{ContractID: c.ID})
	s.Require().NoError(err)
	eventsBefore := s.outbox.Types()
	shipBefore, err := s.ships.FindByID(s.ctx, shipID)
	s.Require().NoError(err)

	svc := service.New(service.Stores{
		Pilots:    s.pilots,
		Refills:   s.refills,
		Ships:     failingShipStore{ShipStore: s.ships, err: errors.New("boom")},
		Planets:   s.planets,
		Contracts: s.contracts,
		Resources: s.resources,
	}, database.NewMemoryTx(0), events.NewRecorder(s.outbox))

	_, err = svc.Travel(s.ctx, p.ID, service.TravelCommand{DestinationPlanetID: aqua})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))

	stored, err := s.pilots.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(andvari, stored.CurrentLocationID)
	s.Equal("10", stored.Credits.String())

	contract, err := s.contracts.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Nil(contract.FulfilledAt)

	shipAfter, err := s.ships.FindByID(s.ctx, shipID)
	s.Require().NoError(err)
	s.Equal(shipBefore, shipAfter)
	s.Equal(eventsBefore, s.outbox.Types())
}

func (s *PilotServiceSuite) TestRefuel_RefillFailureRollsBack() {
	shipID := s.ship(0, 0)
	p := s.pilot("1234566", &shipID, "1000")
	eventsBefore := s.outbox.Types()

	svc := service.New(service.Stores{
		Pilots:  s.pilots,
		Refills: failingRefillStore{err: errors.New("boom")},
		Ships:   s.ships,
		Planets: s.planets,
	}, database.NewMemoryTx(0), events.NewRecorder(s.outbox))

	_, err := svc.Refuel(s.ctx, p.ID, service.RefuelCommand{Amount: 10})
	s.Require().Error(err)

	stored, err := s.pilots.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("1000", stored.Credits.String())
	ship, err := s.ships.FindByID(s.ctx, shipID)
	s.Require().NoError(err)
	s.Equal(int64(0), ship.FuelLevel)
	s.Equal(eventsBefore, s.outbox.Types())
}

type failingRefillStore struct {
	service.RefillStore
	err error
}

func (f failingRefillStore) Create(context.Context, *models.Refill) error {
	return f.err
}

func TestTravel_ShipSaveFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	pilots := mocks.NewMockPilotStore(ctrl)
	ships := mocks.NewMockShipStore(ctrl)
	planets := mocks.NewMockPlanetStore(ctrl)
	contracts := mocks.NewMockContractStore(ctrl)
	recorder := mocks.NewMockEventRecorder(ctrl)

	shipID := domain.ShipID(uuid.New())
	pilot := &models.Pilot{ID: domain.PilotID(uuid.New()), CurrentLocationID: andvari, ShipID: &shipID, Credits: amount.Zero()}

	pilots.EXPECT().FindByIDForUpdate(gomock.Any(), pilot.ID).Return(pilot, nil)
	ships.EXPECT().FindByIDForUpdate(gomock.Any(), shipID).Return(&shipmodels.Ship{FuelCapacity: 100, FuelLevel: 100}, nil)
	planets.EXPECT().FindByID(gomock.Any(), aqua).Return(&planetmodels.Planet{ID: aqua}, nil)
	planets.EXPECT().FindRoute(gomock.Any(), andvari, aqua).Return(&planetmodels.Route{FuelConsumption: 13}, nil)
	contracts.EXPECT().ListInEffectForLegForUpdate(gomock.Any(), pilot.ID, andvari, aqua).Return(nil, nil)
	pilots.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	ships.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

	svc := service.New(service.Stores{Pilots: pilots, Ships: ships, Planets: planets, Contracts: contracts},
		database.NewMemoryTx(0), recorder)
	_, err := svc.Travel(context.Background(), pilot.ID, service.TravelCommand{DestinationPlanetID: aqua})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
