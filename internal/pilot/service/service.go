package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	shipmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/luhn"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// DefaultRefuelCost is the price of one fuel unit in credits.
const DefaultRefuelCost = 7

type PilotStore interface {
	Create(ctx context.Context, p *models.Pilot) error
	FindByID(ctx context.Context, id domain.PilotID) (*models.Pilot, error)
	FindByIDForUpdate(ctx context.Context, id domain.PilotID) (*models.Pilot, error)
	FindByShipID(ctx context.Context, shipID domain.ShipID) (*models.Pilot, error)
	FindByCertification(ctx context.Context, certification string) (*models.Pilot, error)
	Update(ctx context.Context, p *models.Pilot) error
}

type RefillStore interface {
	Create(ctx context.Context, r *models.Refill) error
}

type ShipStore interface {
	FindByID(ctx context.Context, id domain.ShipID) (*shipmodels.Ship, error)
	FindByIDForUpdate(ctx context.Context, id domain.ShipID) (*shipmodels.Ship, error)
	Update(ctx context.Context, ship *shipmodels.Ship) error
}

type PlanetStore interface {
	ListPlanets(ctx context.Context) ([]*planetmodels.Planet, error)
	FindByID(ctx context.Context, id domain.PlanetID) (*planetmodels.Planet, error)
	FindRoute(ctx context.Context, origin, destination domain.PlanetID) (*planetmodels.Route, error)
}

type ContractStore interface {
	FindByIDForUpdate(ctx context.Context, id domain.ContractID) (*contractmodels.Contract, error)
	Update(ctx context.Context, c *contractmodels.Contract) error
	ListInEffectForLegForUpdate(ctx context.Context, pilotID domain.PilotID, origin, destination domain.PlanetID) ([]*contractmodels.Contract, error)
}

type ResourceStore interface {
	ListByContracts(ctx context.Context, contractIDs []domain.ContractID) (map[domain.ContractID][]*contractmodels.Resource, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventRecorder interface {
	Record(ctx context.Context, aggregateType string, aggregateID uuid.UUID, typ events.Type, payload any) error
}

// Stores groups the persistence ports of the pilot lifecycle.
type Stores struct {
	Pilots    PilotStore
	Refills   RefillStore
	Ships     ShipStore
	Planets   PlanetStore
	Contracts ContractStore
	Resources ResourceStore
}

// CreatePilotCommand holds schema-validated pilot attributes.
type CreatePilotCommand struct {
	Certification     string
	Name              string
	Age               int64
	Credits           amount.Amount
	CurrentLocationID domain.PlanetID
	ShipID            *domain.ShipID
}

type TravelCommand struct {
	DestinationPlanetID domain.PlanetID
}

// RefuelCommand carries the raw requested amount; Refuel decides whether it
// is a whole number of fuel units.
type RefuelCommand struct {
	Amount float64
}

// units converts a positive whole amount to fuel units. Amounts beyond int64
// saturate, which still fails the fuel capacity check.
func (c RefuelCommand) units() (int64, bool) {
	a := c.Amount
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 || a != math.Trunc(a) {
		return 0, false
	}
	if a >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(a), true
}

type AcceptContractCommand struct {
	ContractID domain.ContractID
}

// Service runs the pilot lifecycle. Every operation is one transaction that
// locks pilot, ship, contract and resource rows in that order.
type Service struct {
	stores     Stores
	tx         TxRunner
	events     EventRecorder
	refuelCost amount.Amount
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithRefuelCost sets the price of one fuel unit.
func WithRefuelCost(cost amount.Amount) Option {
	return func(s *Service) {
		s.refuelCost = cost
	}
}

func New(stores Stores, tx TxRunner, recorder EventRecorder, opts ...Option) *Service {
	s := &Service{
		stores:     stores,
		tx:         tx,
		events:     recorder,
		refuelCost: amount.FromInt(DefaultRefuelCost),
		logger:     slog.Default(),
		tracer:     otel.Tracer("github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePilot registers a pilot at a planet, optionally owning an unowned ship.
func (s *Service) CreatePilot(ctx context.Context, cmd CreatePilotCommand) (*models.View, error) {
	ctx, span := s.tracer.Start(ctx, "pilot.CreatePilot")
	defer span.End()
	start := time.Now()

	now := requestcontext.Now(ctx)
	pilot := &models.Pilot{
		ID:                domain.PilotID(uuid.New()),
		Certification:     cmd.Certification,
		Name:              cmd.Name,
		Age:               cmd.Age,
		Credits:           cmd.Credits,
		CurrentLocationID: cmd.CurrentLocationID,
		ShipID:            cmd.ShipID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var ship *shipmodels.Ship
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v := dErrors.NewCollector(CodeInvalidPilotCreationData, msgInvalidPilotCreationData)

		if ok, err := luhn.IsValid(cmd.Certification); err != nil || !ok {
			v.Add(CodeInvalidPilotCertificationChecksum, "Certification %q has an invalid checksum!", cmd.Certification)
		}

		if cmd.ShipID != nil {
			var err error
			ship, err = s.stores.Ships.FindByIDForUpdate(ctx, *cmd.ShipID)
			shipOK, err := present(v, err, CodeShipNotFound, "There is no ship associated with this id %q!", cmd.ShipID.String())
			if err != nil {
				return err
			}
			if shipOK {
				_, err = s.stores.Pilots.FindByShipID(ctx, *cmd.ShipID)
				switch {
				case err == nil:
					v.Add(CodeShipAlreadyHasOwner, "Ship %q already has an owner!", cmd.ShipID.String())
				case !errors.Is(err, sentinel.ErrNotFound):
					return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check ship ownership")
				}
			}
		}

		_, err := s.stores.Planets.FindByID(ctx, cmd.CurrentLocationID)
		if _, err := present(v, err, CodePlanetNotFound, "There is no planet associated with this id %q!", cmd.CurrentLocationID.String()); err != nil {
			return err
		}

		_, err = s.stores.Pilots.FindByCertification(ctx, cmd.Certification)
		switch {
		case err == nil:
			v.Add(CodeCertificationAlreadyExists, "There already is a pilot with certification %q!", cmd.Certification)
		case !errors.Is(err, sentinel.ErrNotFound):
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check certification")
		}

		if err := v.Err(); err != nil {
			return err
		}

		if err := s.stores.Pilots.Create(ctx, pilot); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "pilot certification or ship was taken concurrently")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save pilot")
		}
		return s.events.Record(ctx, events.AggregatePilot, uuid.UUID(pilot.ID), events.TypePilotCreated, pilot)
	})
	s.observe(span, "create_pilot", start, err)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementPilotsCreated()
	}
	s.logger.InfoContext(ctx, "pilot created",
		"event", events.TypePilotCreated,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"pilot_id", pilot.ID,
	)
	return s.view(ctx, pilot, ship)
}

// GetPilot returns the pilot with its ship and current location.
func (s *Service) GetPilot(ctx context.Context, id domain.PilotID) (*models.View, error) {
	pilot, err := s.stores.Pilots.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "pilot not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pilot")
	}

	var ship *shipmodels.Ship
	if pilot.HasShip() {
		ship, err = s.stores.Ships.FindByID(ctx, *pilot.ShipID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pilot ship")
		}
	}
	return s.view(ctx, pilot, ship)
}

func (s *Service) view(ctx context.Context, pilot *models.Pilot, ship *shipmodels.Ship) (*models.View, error) {
	location, err := s.stores.Planets.FindByID(ctx, pilot.CurrentLocationID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pilot location")
	}
	return &models.View{Pilot: pilot, Ship: ship, CurrentLocation: location}, nil
}

// present turns a lookup error into a validation entry when the row is
// missing. Other errors are returned as internal failures.
func present(v *dErrors.Collector, err error, code, format string, args ...any) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sentinel.ErrNotFound):
		v.Add(code, format, args...)
		return false, nil
	default:
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load referenced entity")
	}
}

// observe closes the bookkeeping of one operation: span status and metrics.
func (s *Service) observe(span trace.Span, operation string, start time.Time, err error) {
	outcome := "success"
	switch {
	case err == nil:
	case dErrors.HasCode(err, dErrors.CodeValidation):
		outcome = "rejected"
		span.SetAttributes(attribute.String("validation.error", err.Error()))
	default:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, outcome, start)
	}
}
