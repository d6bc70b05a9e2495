package service_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ContractStore,ResourceStore,PlanetStore,EventRecorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service/mocks"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	eventstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	planetstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store/seed"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

var (
	andvari = planetmodels.PlanetIDFor("Andvari")
	aqua    = planetmodels.PlanetIDFor("Aqua")
)

type ContractServiceSuite struct {
	suite.Suite
	contracts *store.InMemoryContractStore
	resources *store.InMemoryResourceStore
	outbox    *eventstore.InMemoryStore
	metrics   *metrics.Metrics
	service   *service.Service
	ctx       context.Context
	now       time.Time
}

func TestContractServiceSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceSuite))
}

func (s *ContractServiceSuite) SetupTest() {
	planets := planetstore.NewInMemory()
	u, err := seed.Default()
	s.Require().NoError(err)
	s.Require().NoError(u.Apply(context.Background(), planets, time.Now()))

	s.contracts = store.NewInMemoryContractStore()
	s.resources = store.NewInMemoryResourceStore()
	s.outbox = eventstore.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = service.New(s.contracts, s.resources, planets, database.NewMemoryTx(0),
		events.NewRecorder(s.outbox), service.WithMetrics(s.metrics))
	s.now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ContractServiceSuite) resource(name string, weight int64) *models.Resource {
	r, err := s.service.CreateResource(s.ctx, service.CreateResourceCommand{Name: name, Weight: weight})
	s.Require().NoError(err)
	return r
}

func (s *ContractServiceSuite) command(payload ...domain.ResourceID) service.CreateContractCommand {
	return service.CreateContractCommand{
		Description:         "Water run",
		PayloadIDs:          payload,
		OriginPlanetID:      andvari,
		DestinationPlanetID: aqua,
		Value:               amount.MustParse("120.5"),
	}
}

func (s *ContractServiceSuite) TestCreateContract() {
	water := s.resource("water", 10)
	food := s.resource("food", 5)

	view, err := s.service.CreateContract(s.ctx, s.command(water.ID, food.ID))
	s.Require().NoError(err)

	s.Equal(models.StatusOpen, view.Status)
	s.Len(view.Payload, 2)
	s.Require().NotNil(view.OriginPlanet)
	s.Equal("Andvari", view.OriginPlanet.Name)
	s.Equal("Aqua", view.DestinationPlanet.Name)

	stored, err := s.resources.FindByID(s.ctx, water.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.ContractID)
	s.Equal(view.ID, *stored.ContractID)

	s.Equal([]events.Type{events.TypeResourceCreated, events.TypeResourceCreated, events.TypeContractCreated}, s.outbox.Types())
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ContractsCreated))
}

func (s *ContractServiceSuite) TestCreateContractAccumulatesReferentialErrors() {
	water := s.resource("water", 10)
	_, err := s.service.CreateContract(s.ctx, s.command(water.ID))
	s.Require().NoError(err)

	cmd := s.command(water.ID, domain.ResourceID(uuid.New()))
	cmd.DestinationPlanetID = domain.PlanetID(uuid.New())
	_, err = s.service.CreateContract(s.ctx, cmd)

	var verr *dErrors.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(service.CodeInvalidContractCreationData, verr.Code)
	s.True(verr.HasEntry(service.CodeResourceAlreadyAssociatedWithContract))
	s.True(verr.HasEntry(service.CodeResourceNotFound))
	s.True(verr.HasEntry(service.CodePlanetNotFound))

	all, err := s.contracts.List(s.ctx, store.ListFilter{})
	s.Require().NoError(err)
	s.Len(all, 1, "a rejected contract writes nothing")
}

func (s *ContractServiceSuite) TestListContractsPaginates() {
	for i := 0; i < 3; i++ {
		r := s.resource("ore", 1)
		_, err := s.service.CreateContract(s.ctx, s.command(r.ID))
		s.Require().NoError(err)
	}

	first, err := s.service.ListContracts(s.ctx, service.ListQuery{Page: 1, PageSize: 2})
	s.Require().NoError(err)
	s.Len(first.Contracts, 2)
	s.True(first.HasNext)

	second, err := s.service.ListContracts(s.ctx, service.ListQuery{Page: 2, PageSize: 2})
	s.Require().NoError(err)
	s.Len(second.Contracts, 1)
	s.False(second.HasNext)
	s.Len(second.Contracts[0].Payload, 1)
}

func (s *ContractServiceSuite) TestListContractsFiltersByStatus() {
	r := s.resource("ore", 1)
	created, err := s.service.CreateContract(s.ctx, s.command(r.ID))
	s.Require().NoError(err)

	open, err := s.service.ListContracts(s.ctx, service.ListQuery{Statuses: []models.Status{models.StatusOpen}})
	s.Require().NoError(err)
	s.Len(open.Contracts, 1)

	fulfilled, err := s.service.ListContracts(s.ctx, service.ListQuery{Statuses: []models.Status{models.StatusFulfilled}})
	s.Require().NoError(err)
	s.Empty(fulfilled.Contracts)

	got, err := s.service.GetContract(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
}

func (s *ContractServiceSuite) TestGetContractNotFound() {
	_, err := s.service.GetContract(s.ctx, domain.ContractID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ContractServiceSuite) TestListResourcesAvailableOnly() {
	water := s.resource("water", 10)
	s.resource("food", 5)
	_, err := s.service.CreateContract(s.ctx, s.command(water.ID))
	s.Require().NoError(err)

	all, err := s.service.ListResources(s.ctx, false)
	s.Require().NoError(err)
	s.Len(all, 2)

	available, err := s.service.ListResources(s.ctx, true)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("food", available[0].Name)
}

func TestCreateContract_AttachFailureRollsBackEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	contracts := mocks.NewMockContractStore(ctrl)
	resources := mocks.NewMockResourceStore(ctrl)
	planets := mocks.NewMockPlanetStore(ctrl)
	recorder := mocks.NewMockEventRecorder(ctrl)

	id := domain.ResourceID(uuid.New())
	resources.EXPECT().FindManyForUpdate(gomock.Any(), []domain.ResourceID{id}).
		Return([]*models.Resource{{ID: id, Name: "ore", Weight: 1}}, nil)
	planets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&planetmodels.Planet{}, nil).Times(2)
	contracts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	resources.EXPECT().AttachToContract(gomock.Any(), []domain.ResourceID{id}, gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	recorder.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.New(contracts, resources, planets, database.NewMemoryTx(0), recorder)
	_, err := svc.CreateContract(context.Background(), service.CreateContractCommand{
		PayloadIDs:          []domain.ResourceID{id},
		OriginPlanetID:      andvari,
		DestinationPlanetID: aqua,
		Value:               amount.FromInt(1),
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestCreateContract_PlanetLookupFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	contracts := mocks.NewMockContractStore(ctrl)
	resources := mocks.NewMockResourceStore(ctrl)
	planets := mocks.NewMockPlanetStore(ctrl)
	recorder := mocks.NewMockEventRecorder(ctrl)

	resources.EXPECT().FindManyForUpdate(gomock.Any(), gomock.Any()).Return(nil, nil)
	planets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	svc := service.New(contracts, resources, planets, database.NewMemoryTx(0), recorder)
	_, err := svc.CreateContract(context.Background(), service.CreateContractCommand{
		PayloadIDs:          []domain.ResourceID{domain.ResourceID(uuid.New())},
		OriginPlanetID:      andvari,
		DestinationPlanetID: aqua,
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
