// Package service builds the federation reports. Each report reads one
// snapshot of planets, pilots, fulfilled contracts and refills, fetched in
// parallel, and aggregates it in memory.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	pilotmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/report/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
)

const defaultSnapshotTimeout = 5 * time.Second

type PlanetStore interface {
	ListPlanets(ctx context.Context) ([]*planetmodels.Planet, error)
}

type PilotStore interface {
	List(ctx context.Context) ([]*pilotmodels.Pilot, error)
}

type RefillStore interface {
	List(ctx context.Context) ([]*pilotmodels.Refill, error)
}

type ContractStore interface {
	ListFulfilled(ctx context.Context) ([]*contractmodels.Contract, error)
}

type ResourceStore interface {
	ListByContracts(ctx context.Context, contractIDs []domain.ContractID) (map[domain.ContractID][]*contractmodels.Resource, error)
}

type Stores struct {
	Planets   PlanetStore
	Pilots    PilotStore
	Refills   RefillStore
	Contracts ContractStore
	Resources ResourceStore
}

// Snapshot is everything the reports aggregate over.
type Snapshot struct {
	Planets   []*planetmodels.Planet
	Pilots    []*pilotmodels.Pilot
	Refills   []*pilotmodels.Refill
	Fulfilled []*contractmodels.Contract
	Payloads  map[domain.ContractID][]*contractmodels.Resource
}

type Service struct {
	stores  Stores
	timeout time.Duration
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

// WithSnapshotTimeout bounds the parallel reads behind one report.
func WithSnapshotTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

func New(stores Stores, opts ...Option) *Service {
	s := &Service{
		stores:  stores,
		timeout: defaultSnapshotTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) PlanetsResourcesSummary(ctx context.Context) ([]PlanetSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.generated("planets_resources_summary")
	return PlanetsResourcesSummary(snap), nil
}

func (s *Service) PilotsResourcesSummary(ctx context.Context) ([]PilotSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.generated("pilots_resources_summary")
	return PilotsResourcesSummary(snap), nil
}

func (s *Service) TransactionsLedger(ctx context.Context) ([]LedgerEntry, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.generated("transactions_ledger")
	return TransactionsLedger(snap), nil
}

func (s *Service) generated(report string) {
	if s.metrics != nil {
		s.metrics.IncrementGenerated(report)
	}
}

// snapshot reads every source in parallel; the first failure cancels the rest.
func (s *Service) snapshot(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	snap := &Snapshot{}

	g.Go(func() error {
		return s.timed("planets", func() (err error) {
			snap.Planets, err = s.stores.Planets.ListPlanets(ctx)
			return err
		})
	})
	g.Go(func() error {
		return s.timed("pilots", func() (err error) {
			snap.Pilots, err = s.stores.Pilots.List(ctx)
			return err
		})
	})
	g.Go(func() error {
		return s.timed("refills", func() (err error) {
			snap.Refills, err = s.stores.Refills.List(ctx)
			return err
		})
	})
	g.Go(func() error {
		return s.timed("contracts", func() error {
			fulfilled, err := s.stores.Contracts.ListFulfilled(ctx)
			if err != nil {
				return err
			}
			ids := make([]domain.ContractID, 0, len(fulfilled))
			for _, c := range fulfilled {
				ids = append(ids, c.ID)
			}
			payloads, err := s.stores.Resources.ListByContracts(ctx, ids)
			if err != nil {
				return err
			}
			snap.Fulfilled, snap.Payloads = fulfilled, payloads
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to read report snapshot", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read report data")
	}
	return snap, nil
}

func (s *Service) timed(source string, fn func() error) error {
	start := time.Now()
	err := fn()
	if s.metrics != nil {
		s.metrics.ObserveSourceLatency(source, time.Since(start))
	}
	return err
}
