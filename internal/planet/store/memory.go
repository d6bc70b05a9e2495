package store

import (
	"context"
	"sort"
	"sync"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
)

// InMemoryStore keeps the universe in maps; used when no database is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	planets map[domain.PlanetID]*models.Planet
	routes  map[models.RouteKey]models.Route
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		planets: make(map[domain.PlanetID]*models.Planet),
		routes:  make(map[models.RouteKey]models.Route),
	}
}

func (s *InMemoryStore) UpsertPlanet(_ context.Context, planet *models.Planet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.planets[planet.ID]; ok {
		updated := *existing
		updated.Name = planet.Name
		updated.UpdatedAt = planet.UpdatedAt
		s.planets[planet.ID] = &updated
		return nil
	}
	cp := *planet
	s.planets[planet.ID] = &cp
	return nil
}

func (s *InMemoryStore) UpsertRoute(_ context.Context, route models.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[route.Key()] = route
	return nil
}

// ListPlanets returns planets ordered by name.
func (s *InMemoryStore) ListPlanets(_ context.Context) ([]*models.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Planet, 0, len(s.planets))
	for _, p := range s.planets {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.PlanetID) (*models.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.planets[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ListRoutes returns routes ordered by origin then destination ID.
func (s *InMemoryStore) ListRoutes(_ context.Context) ([]models.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Route, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, r)
	}
	sortRoutes(out)
	return out, nil
}

func (s *InMemoryStore) FindRoute(_ context.Context, origin, destination domain.PlanetID) (*models.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.routes[models.RouteKey{Origin: origin, Destination: destination}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &r, nil
}

func sortRoutes(routes []models.Route) {
	sort.Slice(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if a.OriginPlanetID != b.OriginPlanetID {
			return a.OriginPlanetID.String() < b.OriginPlanetID.String()
		}
		return a.DestinationPlanetID.String() < b.DestinationPlanetID.String()
	})
}
