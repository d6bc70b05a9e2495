package store

import (
	"context"
	"sync"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

// InMemoryStore is the in-memory ship store. Row locks are not modelled;
// in-memory mode serializes whole units of work instead.
type InMemoryStore struct {
	mu    sync.RWMutex
	ships map[domain.ShipID]*models.Ship
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{ships: make(map[domain.ShipID]*models.Ship)}
}

func (s *InMemoryStore) Create(ctx context.Context, ship *models.Ship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ships[ship.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *ship
	s.ships[ship.ID] = &cp
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.ships, ship.ID)
	})
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.ShipID) (*models.Ship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ship, ok := s.ships[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *ship
	return &cp, nil
}

func (s *InMemoryStore) FindByIDForUpdate(ctx context.Context, id domain.ShipID) (*models.Ship, error) {
	return s.FindByID(ctx, id)
}

func (s *InMemoryStore) Update(ctx context.Context, ship *models.Ship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, ok := s.ships[ship.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *ship
	s.ships[ship.ID] = &cp
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.ships[ship.ID] = previous
	})
	return nil
}
