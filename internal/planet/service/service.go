package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
)

type Store interface {
	ListPlanets(ctx context.Context) ([]*models.Planet, error)
	FindByID(ctx context.Context, id domain.PlanetID) (*models.Planet, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
}

// RouteDetail is a Route with both endpoints resolved.
type RouteDetail struct {
	Origin          *models.Planet `json:"origin"`
	Destination     *models.Planet `json:"destination"`
	FuelConsumption int64          `json:"fuelConsumption"`
}

// Service answers read-only questions about the universe.
type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListPlanets(ctx context.Context) ([]*models.Planet, error) {
	planets, err := s.store.ListPlanets(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list planets")
	}
	if planets == nil {
		planets = []*models.Planet{}
	}
	return planets, nil
}

func (s *Service) GetPlanet(ctx context.Context, id domain.PlanetID) (*models.Planet, error) {
	planet, err := s.store.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "planet not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load planet")
	}
	return planet, nil
}

// ListRoutes returns the directed route table with planet names resolved.
func (s *Service) ListRoutes(ctx context.Context) ([]RouteDetail, error) {
	planets, err := s.store.ListPlanets(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list planets")
	}
	routes, err := s.store.ListRoutes(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list routes")
	}

	byID := make(map[domain.PlanetID]*models.Planet, len(planets))
	for _, p := range planets {
		byID[p.ID] = p
	}
	out := make([]RouteDetail, 0, len(routes))
	for _, r := range routes {
		origin, okOrigin := byID[r.OriginPlanetID]
		destination, okDestination := byID[r.DestinationPlanetID]
		if !okOrigin || !okDestination {
			s.logger.WarnContext(ctx, "route references unknown planet",
				"origin_planet_id", r.OriginPlanetID,
				"destination_planet_id", r.DestinationPlanetID,
			)
			continue
		}
		out = append(out, RouteDetail{
			Origin:          origin,
			Destination:     destination,
			FuelConsumption: r.FuelConsumption,
		})
	}
	return out, nil
}
