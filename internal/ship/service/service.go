package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, ship *models.Ship) error
	FindByID(ctx context.Context, id domain.ShipID) (*models.Ship, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventRecorder interface {
	Record(ctx context.Context, aggregateType string, aggregateID uuid.UUID, typ events.Type, payload any) error
}

// CreateShipCommand holds schema-validated ship attributes.
type CreateShipCommand struct {
	FuelCapacity   int64
	FuelLevel      int64
	WeightCapacity int64
	CurrentWeight  int64
}

// Service registers and looks up ships.
type Service struct {
	ships   Store
	tx      TxRunner
	events  EventRecorder
	logger  *slog.Logger
	metrics *metrics.Metrics
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

func New(ships Store, tx TxRunner, recorder EventRecorder, opts ...Option) *Service {
	s := &Service{ships: ships, tx: tx, events: recorder, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateShip(ctx context.Context, cmd CreateShipCommand) (*models.Ship, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)
	ship := &models.Ship{
		ID:             domain.ShipID(uuid.New()),
		FuelCapacity:   cmd.FuelCapacity,
		FuelLevel:      cmd.FuelLevel,
		WeightCapacity: cmd.WeightCapacity,
		CurrentWeight:  cmd.CurrentWeight,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ships.Create(ctx, ship); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save ship")
		}
		return s.events.Record(ctx, events.AggregateShip, uuid.UUID(ship.ID), events.TypeShipCreated, ship)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementShipsCreated()
		s.metrics.ObserveCreateShip(start)
	}
	s.logger.InfoContext(ctx, "ship created",
		"event", events.TypeShipCreated,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"ship_id", ship.ID,
	)
	return ship, nil
}

func (s *Service) GetShip(ctx context.Context, id domain.ShipID) (*models.Ship, error) {
	ship, err := s.ships.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "ship not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ship")
	}
	return ship, nil
}
