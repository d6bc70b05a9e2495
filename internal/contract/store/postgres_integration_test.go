//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/store"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	planetstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store/seed"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/testutil/containers"
)

type ContractPostgresSuite struct {
	suite.Suite
	postgres  *containers.PostgresContainer
	contracts *store.PostgresContractStore
	resources *store.PostgresResourceStore
	tx        *database.TxRunner
}

func TestContractPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ContractPostgresSuite))
}

func (s *ContractPostgresSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.contracts = store.NewPostgresContractStore(s.postgres.DB)
	s.resources = store.NewPostgresResourceStore(s.postgres.DB)
	s.tx = database.NewTxRunner(s.postgres.DB, 5*time.Second)

	u, err := seed.Default()
	s.Require().NoError(err)
	s.Require().NoError(u.Apply(context.Background(), planetstore.NewPostgres(s.postgres.DB), time.Now()))
}

func (s *ContractPostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "resources", "contracts"))
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *ContractPostgresSuite) newResource(weight int64) *models.Resource {
	r := &models.Resource{ID: domain.ResourceID(uuid.New()), Name: "ore", Weight: weight, CreatedAt: now(), UpdatedAt: now()}
	s.Require().NoError(s.resources.Create(context.Background(), r))
	return r
}

func (s *ContractPostgresSuite) newContract() *models.Contract {
	c := &models.Contract{
		ID:                  domain.ContractID(uuid.New()),
		Description:         "Ore run",
		OriginPlanetID:      planetmodels.PlanetIDFor("Andvari"),
		DestinationPlanetID: planetmodels.PlanetIDFor("Aqua"),
		Value:               amount.MustParse("99.9999"),
		CreatedAt:           now(),
		UpdatedAt:           now(),
	}
	s.Require().NoError(s.contracts.Create(context.Background(), c))
	return c
}

func (s *ContractPostgresSuite) TestCreateAndAttach() {
	ctx := context.Background()
	a, b := s.newResource(3), s.newResource(4)
	c := s.newContract()

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		locked, err := s.resources.FindManyForUpdate(ctx, []domain.ResourceID{a.ID, b.ID})
		if err != nil {
			return err
		}
		s.Len(locked, 2)
		return s.resources.AttachToContract(ctx, []domain.ResourceID{a.ID, b.ID}, c.ID, now())
	})
	s.Require().NoError(err)

	payloads, err := s.resources.ListByContracts(ctx, []domain.ContractID{c.ID})
	s.Require().NoError(err)
	s.Equal(int64(7), models.PayloadWeight(payloads[c.ID]))

	available, err := s.resources.List(ctx, true)
	s.Require().NoError(err)
	s.Empty(available)

	stored, err := s.contracts.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	s.True(c.Value.Equal(stored.Value))
	s.Equal(models.StatusOpen, stored.Status())
}

func (s *ContractPostgresSuite) TestAttachIsAllOrNothing() {
	ctx := context.Background()
	a, b := s.newResource(1), s.newResource(1)
	first, second := s.newContract(), s.newContract()

	s.Require().NoError(s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.resources.AttachToContract(ctx, []domain.ResourceID{a.ID}, first.ID, now())
	}))
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.resources.AttachToContract(ctx, []domain.ResourceID{a.ID, b.ID}, second.ID, now())
	})
	s.ErrorIs(err, sentinel.ErrConflict)

	stored, err := s.resources.FindByID(ctx, b.ID)
	s.Require().NoError(err)
	s.True(stored.Available())
}

func (s *ContractPostgresSuite) TestListFiltersAndPages() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		s.newContract()
	}

	page, err := s.contracts.List(ctx, store.ListFilter{Limit: 2})
	s.Require().NoError(err)
	s.Len(page, 2)

	rest, err := s.contracts.List(ctx, store.ListFilter{Limit: 2, Offset: 2})
	s.Require().NoError(err)
	s.Len(rest, 1)

	fulfilled, err := s.contracts.List(ctx, store.ListFilter{Statuses: []models.Status{models.StatusFulfilled}})
	s.Require().NoError(err)
	s.Empty(fulfilled)

	all, err := s.contracts.ListFulfilled(ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *ContractPostgresSuite) TestLockingReadRequiresTransaction() {
	_, err := s.contracts.FindByIDForUpdate(context.Background(), domain.ContractID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrInvalidState)
}

func (s *ContractPostgresSuite) TestFindByIDNotFound() {
	_, err := s.contracts.FindByID(context.Background(), domain.ContractID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}
