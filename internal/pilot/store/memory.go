package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

// InMemoryPilotStore keeps pilots in a map and enforces the same uniqueness
// rules as the pilots table: one certification and one ship per pilot.
type InMemoryPilotStore struct {
	mu     sync.RWMutex
	pilots map[domain.PilotID]*models.Pilot
}

func NewInMemoryPilotStore() *InMemoryPilotStore {
	return &InMemoryPilotStore{pilots: make(map[domain.PilotID]*models.Pilot)}
}

func copyPilot(p *models.Pilot) *models.Pilot {
	cp := *p
	if p.ShipID != nil {
		id := *p.ShipID
		cp.ShipID = &id
	}
	return &cp
}

// clashes reports whether another pilot already holds p's certification or ship.
func (s *InMemoryPilotStore) clashes(p *models.Pilot) bool {
	for _, other := range s.pilots {
		if other.ID == p.ID {
			continue
		}
		if other.Certification == p.Certification {
			return true
		}
		if p.ShipID != nil && other.ShipID != nil && *other.ShipID == *p.ShipID {
			return true
		}
	}
	return false
}

func (s *InMemoryPilotStore) Create(ctx context.Context, p *models.Pilot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pilots[p.ID]; ok || s.clashes(p) {
		return sentinel.ErrConflict
	}
	s.pilots[p.ID] = copyPilot(p)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pilots, p.ID)
	})
	return nil
}

func (s *InMemoryPilotStore) FindByID(_ context.Context, id domain.PilotID) (*models.Pilot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pilots[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyPilot(p), nil
}

func (s *InMemoryPilotStore) FindByIDForUpdate(ctx context.Context, id domain.PilotID) (*models.Pilot, error) {
	return s.FindByID(ctx, id)
}

func (s *InMemoryPilotStore) find(keep func(*models.Pilot) bool) (*models.Pilot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pilots {
		if keep(p) {
			return copyPilot(p), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryPilotStore) FindByShipID(_ context.Context, shipID domain.ShipID) (*models.Pilot, error) {
	return s.find(func(p *models.Pilot) bool { return p.ShipID != nil && *p.ShipID == shipID })
}

func (s *InMemoryPilotStore) FindByCertification(_ context.Context, certification string) (*models.Pilot, error) {
	return s.find(func(p *models.Pilot) bool { return p.Certification == certification })
}

func (s *InMemoryPilotStore) Update(ctx context.Context, p *models.Pilot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, ok := s.pilots[p.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if s.clashes(p) {
		return sentinel.ErrConflict
	}
	s.pilots[p.ID] = copyPilot(p)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pilots[p.ID] = previous
	})
	return nil
}

// List returns every pilot ordered by name.
func (s *InMemoryPilotStore) List(_ context.Context) ([]*models.Pilot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Pilot, 0, len(s.pilots))
	for _, p := range s.pilots {
		out = append(out, copyPilot(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// InMemoryRefillStore is an append-only refill history.
type InMemoryRefillStore struct {
	mu      sync.RWMutex
	refills []*models.Refill
}

func NewInMemoryRefillStore() *InMemoryRefillStore {
	return &InMemoryRefillStore{}
}

func (s *InMemoryRefillStore) Create(ctx context.Context, r *models.Refill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.refills = append(s.refills, &cp)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.refills = slices.DeleteFunc(s.refills, func(x *models.Refill) bool { return x == &cp })
	})
	return nil
}

// List returns every refill oldest first.
func (s *InMemoryRefillStore) List(_ context.Context) ([]*models.Refill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Refill, 0, len(s.refills))
	for _, r := range s.refills {
		cp := *r
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
