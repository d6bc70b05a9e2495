package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Validation codes.
const (
	CodeInvalidContractCreationData           = "InvalidContractCreationData"
	CodeResourceNotFound                      = "ResourceNotFound"
	CodeResourceAlreadyAssociatedWithContract = "ResourceAlreadyAssociatedWithContract"
	CodePlanetNotFound                        = "PlanetNotFound"
	msgInvalidContractCreationData            = "Invalid contract creation data!"
)

type ContractStore interface {
	Create(ctx context.Context, c *models.Contract) error
	FindByID(ctx context.Context, id domain.ContractID) (*models.Contract, error)
	List(ctx context.Context, filter store.ListFilter) ([]*models.Contract, error)
}

type ResourceStore interface {
	Create(ctx context.Context, r *models.Resource) error
	FindManyForUpdate(ctx context.Context, ids []domain.ResourceID) ([]*models.Resource, error)
	AttachToContract(ctx context.Context, ids []domain.ResourceID, contractID domain.ContractID, now time.Time) error
	ListByContracts(ctx context.Context, contractIDs []domain.ContractID) (map[domain.ContractID][]*models.Resource, error)
	List(ctx context.Context, availableOnly bool) ([]*models.Resource, error)
}

type PlanetStore interface {
	ListPlanets(ctx context.Context) ([]*planetmodels.Planet, error)
	FindByID(ctx context.Context, id domain.PlanetID) (*planetmodels.Planet, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventRecorder interface {
	Record(ctx context.Context, aggregateType string, aggregateID uuid.UUID, typ events.Type, payload any) error
}

// CreateContractCommand holds schema-validated contract attributes.
// PayloadIDs is non-empty and free of duplicates; origin and destination differ.
type CreateContractCommand struct {
	Description         string
	PayloadIDs          []domain.ResourceID
	OriginPlanetID      domain.PlanetID
	DestinationPlanetID domain.PlanetID
	Value               amount.Amount
}

type CreateResourceCommand struct {
	Name   string
	Weight int64
}

// ListQuery selects one page of contracts. Empty Statuses means any status.
type ListQuery struct {
	Statuses []models.Status
	Page     int
	PageSize int
}

// Page is one page of contract views.
type Page struct {
	Contracts []*models.View
	Page      int
	PageSize  int
	HasNext   bool
}

// Service manages the contract market: resources, contracts and queries.
type Service struct {
	contracts ContractStore
	resources ResourceStore
	planets   PlanetStore
	tx        TxRunner
	events    EventRecorder
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

func New(contracts ContractStore, resources ResourceStore, planets PlanetStore, tx TxRunner, recorder EventRecorder, opts ...Option) *Service {
	s := &Service{
		contracts: contracts,
		resources: resources,
		planets:   planets,
		tx:        tx,
		events:    recorder,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateContract publishes an Open contract and attaches its payload. Every
// referenced resource must exist and be unassigned, and both planets must exist.
func (s *Service) CreateContract(ctx context.Context, cmd CreateContractCommand) (*models.View, error) {
	now := requestcontext.Now(ctx)
	contract := &models.Contract{
		ID:                  domain.ContractID(uuid.New()),
		Description:         cmd.Description,
		OriginPlanetID:      cmd.OriginPlanetID,
		DestinationPlanetID: cmd.DestinationPlanetID,
		Value:               cmd.Value,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	var payload []*models.Resource
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v := dErrors.NewCollector(CodeInvalidContractCreationData, msgInvalidContractCreationData)

		locked, err := s.resources.FindManyForUpdate(ctx, cmd.PayloadIDs)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payload")
		}
		byID := make(map[domain.ResourceID]*models.Resource, len(locked))
		for _, r := range locked {
			byID[r.ID] = r
		}
		payload = payload[:0]
		for _, id := range cmd.PayloadIDs {
			r, ok := byID[id]
			if !ok {
				v.Add(CodeResourceNotFound, "There is no resource associated with this id %q!", id.String())
				continue
			}
			if !r.Available() {
				v.Add(CodeResourceAlreadyAssociatedWithContract, "Resource %q is already associated with another contract!", id.String())
				continue
			}
			payload = append(payload, r)
		}

		for _, planetID := range []domain.PlanetID{cmd.OriginPlanetID, cmd.DestinationPlanetID} {
			if err := s.checkPlanet(ctx, v, planetID); err != nil {
				return err
			}
		}
		if err := v.Err(); err != nil {
			return err
		}

		if err := s.contracts.Create(ctx, contract); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save contract")
		}
		if err := s.resources.AttachToContract(ctx, cmd.PayloadIDs, contract.ID, now); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to attach payload")
		}
		for _, r := range payload {
			cid := contract.ID
			r.ContractID = &cid
			r.UpdatedAt = now
		}
		return s.events.Record(ctx, events.AggregateContract, uuid.UUID(contract.ID), events.TypeContractCreated, map[string]any{
			"contractId":          contract.ID,
			"originPlanetId":      contract.OriginPlanetID,
			"destinationPlanetId": contract.DestinationPlanetID,
			"value":               contract.Value,
			"payloadIds":          cmd.PayloadIDs,
		})
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveContractCreated(contract.Value.Decimal().InexactFloat64(), models.PayloadWeight(payload))
	}
	s.logger.InfoContext(ctx, "contract created",
		"event", events.TypeContractCreated,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"contract_id", contract.ID,
		"payload_size", len(payload),
	)

	planets, err := s.planetIndex(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewView(contract, payload, planets), nil
}

func (s *Service) checkPlanet(ctx context.Context, v *dErrors.Collector, id domain.PlanetID) error {
	_, err := s.planets.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		v.Add(CodePlanetNotFound, "There is no planet associated with this id %q!", id.String())
		return nil
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load planet")
	}
	return nil
}

// ListContracts returns one page of contracts, oldest first.
func (s *Service) ListContracts(ctx context.Context, q ListQuery) (*Page, error) {
	page, pageSize := max(q.Page, 1), q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	contracts, err := s.contracts.List(ctx, store.ListFilter{
		Statuses: models.NormalizeStatuses(q.Statuses),
		Limit:    pageSize + 1,
		Offset:   (page - 1) * pageSize,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contracts")
	}

	hasNext := len(contracts) > pageSize
	if hasNext {
		contracts = contracts[:pageSize]
	}
	views, err := s.Views(ctx, contracts)
	if err != nil {
		return nil, err
	}
	return &Page{Contracts: views, Page: page, PageSize: pageSize, HasNext: hasNext}, nil
}

// DefaultPageSize and MaxPageSize bound ListContracts pages.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func (s *Service) GetContract(ctx context.Context, id domain.ContractID) (*models.View, error) {
	c, err := s.contracts.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "contract not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load contract")
	}
	views, err := s.Views(ctx, []*models.Contract{c})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Views resolves payloads and planets for contracts, keeping their order.
func (s *Service) Views(ctx context.Context, contracts []*models.Contract) ([]*models.View, error) {
	ids := make([]domain.ContractID, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}
	payloads, err := s.resources.ListByContracts(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payloads")
	}
	planets, err := s.planetIndex(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.View, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, models.NewView(c, payloads[c.ID], planets))
	}
	return out, nil
}

func (s *Service) planetIndex(ctx context.Context) (map[domain.PlanetID]*planetmodels.Planet, error) {
	planets, err := s.planets.ListPlanets(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list planets")
	}
	byID := make(map[domain.PlanetID]*planetmodels.Planet, len(planets))
	for _, p := range planets {
		byID[p.ID] = p
	}
	return byID, nil
}

func (s *Service) CreateResource(ctx context.Context, cmd CreateResourceCommand) (*models.Resource, error) {
	now := requestcontext.Now(ctx)
	resource := &models.Resource{
		ID:        domain.ResourceID(uuid.New()),
		Name:      cmd.Name,
		Weight:    cmd.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.resources.Create(ctx, resource); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save resource")
		}
		return s.events.Record(ctx, events.AggregateResource, uuid.UUID(resource.ID), events.TypeResourceCreated, resource)
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementResourcesCreated()
	}
	s.logger.InfoContext(ctx, "resource created",
		"event", events.TypeResourceCreated,
		"log_type", "audit",
		"request_id", requestcontext.RequestID(ctx),
		"resource_id", resource.ID,
	)
	return resource, nil
}

// ListResources returns every resource, or only unassigned ones.
func (s *Service) ListResources(ctx context.Context, availableOnly bool) ([]*models.Resource, error) {
	resources, err := s.resources.List(ctx, availableOnly)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to list resources (available=%t)", availableOnly))
	}
	return resources, nil
}
