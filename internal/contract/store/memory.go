package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

// InMemoryContractStore keeps contracts in a map.
type InMemoryContractStore struct {
	mu        sync.RWMutex
	contracts map[domain.ContractID]*models.Contract
}

func NewInMemoryContractStore() *InMemoryContractStore {
	return &InMemoryContractStore{contracts: make(map[domain.ContractID]*models.Contract)}
}

func copyContract(c *models.Contract) *models.Contract {
	cp := *c
	if c.ContracteeID != nil {
		id := *c.ContracteeID
		cp.ContracteeID = &id
	}
	if c.FulfilledAt != nil {
		at := *c.FulfilledAt
		cp.FulfilledAt = &at
	}
	return &cp
}

func (s *InMemoryContractStore) Create(ctx context.Context, c *models.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contracts[c.ID]; ok {
		return sentinel.ErrConflict
	}
	s.contracts[c.ID] = copyContract(c)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.contracts, c.ID)
	})
	return nil
}

func (s *InMemoryContractStore) FindByID(_ context.Context, id domain.ContractID) (*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contracts[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyContract(c), nil
}

func (s *InMemoryContractStore) FindByIDForUpdate(ctx context.Context, id domain.ContractID) (*models.Contract, error) {
	return s.FindByID(ctx, id)
}

func (s *InMemoryContractStore) Update(ctx context.Context, c *models.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, ok := s.contracts[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.contracts[c.ID] = copyContract(c)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.contracts[c.ID] = previous
	})
	return nil
}

// sorted returns contracts oldest first, ties broken by ID.
func (s *InMemoryContractStore) sorted(keep func(*models.Contract) bool) []*models.Contract {
	out := make([]*models.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		if keep(c) {
			out = append(out, copyContract(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (s *InMemoryContractStore) List(_ context.Context, filter ListFilter) ([]*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.sorted(filter.matches)
	if filter.Offset >= len(all) {
		return []*models.Contract{}, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, nil
}

// ListInEffectForLegForUpdate returns the pilot's unfulfilled contracts for
// exactly the origin to destination leg.
func (s *InMemoryContractStore) ListInEffectForLegForUpdate(_ context.Context, pilotID domain.PilotID, origin, destination domain.PlanetID) ([]*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(c *models.Contract) bool {
		return c.ContracteeID != nil && *c.ContracteeID == pilotID &&
			c.FulfilledAt == nil &&
			c.OriginPlanetID == origin && c.DestinationPlanetID == destination
	}), nil
}

// ListFulfilled returns fulfilled contracts ordered by fulfillment time.
func (s *InMemoryContractStore) ListFulfilled(_ context.Context) ([]*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.sorted(func(c *models.Contract) bool { return c.FulfilledAt != nil })
	sort.SliceStable(out, func(i, j int) bool { return out[i].FulfilledAt.Before(*out[j].FulfilledAt) })
	return out, nil
}

// InMemoryResourceStore keeps resources in a map.
type InMemoryResourceStore struct {
	mu        sync.RWMutex
	resources map[domain.ResourceID]*models.Resource
}

func NewInMemoryResourceStore() *InMemoryResourceStore {
	return &InMemoryResourceStore{resources: make(map[domain.ResourceID]*models.Resource)}
}

func copyResource(r *models.Resource) *models.Resource {
	cp := *r
	if r.ContractID != nil {
		id := *r.ContractID
		cp.ContractID = &id
	}
	return &cp
}

func (s *InMemoryResourceStore) Create(ctx context.Context, r *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[r.ID]; ok {
		return sentinel.ErrConflict
	}
	s.resources[r.ID] = copyResource(r)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.resources, r.ID)
	})
	return nil
}

func (s *InMemoryResourceStore) FindByID(_ context.Context, id domain.ResourceID) (*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyResource(r), nil
}

// FindManyForUpdate returns the resources that exist among ids; missing ids
// are simply absent from the result.
func (s *InMemoryResourceStore) FindManyForUpdate(_ context.Context, ids []domain.ResourceID) ([]*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Resource, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.resources[id]; ok {
			out = append(out, copyResource(r))
		}
	}
	return out, nil
}

// AttachToContract assigns every resource in ids to contractID. It fails
// without changes if any of them is missing or already assigned.
func (s *InMemoryResourceStore) AttachToContract(ctx context.Context, ids []domain.ResourceID, contractID domain.ContractID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		r, ok := s.resources[id]
		if !ok {
			return sentinel.ErrNotFound
		}
		if r.ContractID != nil {
			return sentinel.ErrConflict
		}
	}
	previous := make(map[domain.ResourceID]*models.Resource, len(ids))
	for _, id := range ids {
		previous[id] = s.resources[id]
		attached := copyResource(s.resources[id])
		cid := contractID
		attached.ContractID = &cid
		attached.UpdatedAt = now
		s.resources[id] = attached
	}
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for id, r := range previous {
			s.resources[id] = r
		}
	})
	return nil
}

// ListByContracts returns the payload of every given contract, keyed by contract.
func (s *InMemoryResourceStore) ListByContracts(_ context.Context, contractIDs []domain.ContractID) (map[domain.ContractID][]*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[domain.ContractID]bool, len(contractIDs))
	for _, id := range contractIDs {
		wanted[id] = true
	}
	out := make(map[domain.ContractID][]*models.Resource)
	for _, r := range s.resources {
		if r.ContractID != nil && wanted[*r.ContractID] {
			out[*r.ContractID] = append(out[*r.ContractID], copyResource(r))
		}
	}
	for id := range out {
		sortResources(out[id])
	}
	return out, nil
}

func (s *InMemoryResourceStore) List(_ context.Context, availableOnly bool) ([]*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		if availableOnly && !r.Available() {
			continue
		}
		out = append(out, copyResource(r))
	}
	sortResources(out)
	return out, nil
}

func sortResources(rs []*models.Resource) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID.String() < rs[j].ID.String()
	})
}
