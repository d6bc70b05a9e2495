package service_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,EventRecorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	eventstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service/mocks"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

type ShipServiceSuite struct {
	suite.Suite
	ships   *store.InMemoryStore
	outbox  *eventstore.InMemoryStore
	metrics *metrics.Metrics
	service *service.Service
	ctx     context.Context
	now     time.Time
}

func TestShipServiceSuite(t *testing.T) {
	suite.Run(t, new(ShipServiceSuite))
}

func (s *ShipServiceSuite) SetupTest() {
	s.ships = store.NewInMemory()
	s.outbox = eventstore.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = service.New(s.ships, database.NewMemoryTx(0), events.NewRecorder(s.outbox),
		service.WithMetrics(s.metrics))
	s.now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ShipServiceSuite) TestCreateShip() {
	ship, err := s.service.CreateShip(s.ctx, service.CreateShipCommand{
		FuelCapacity: 200, FuelLevel: 50, WeightCapacity: 500, CurrentWeight: 0,
	})
	s.Require().NoError(err)
	s.False(ship.ID.IsNil())
	s.Equal(s.now, ship.CreatedAt)

	stored, err := s.ships.FindByID(s.ctx, ship.ID)
	s.Require().NoError(err)
	s.Equal(int64(50), stored.FuelLevel)

	s.Equal([]events.Type{events.TypeShipCreated}, s.outbox.Types())
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.ShipsCreated))
}

func (s *ShipServiceSuite) TestGetShip() {
	created, err := s.service.CreateShip(s.ctx, service.CreateShipCommand{FuelCapacity: 1, WeightCapacity: 1})
	s.Require().NoError(err)

	got, err := s.service.GetShip(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)

	_, err = s.service.GetShip(s.ctx, domain.ShipID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestCreateShip_StoreFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	ships := mocks.NewMockStore(ctrl)
	recorder := mocks.NewMockEventRecorder(ctrl)
	ships.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := service.New(ships, database.NewMemoryTx(0), recorder)
	_, err := svc.CreateShip(context.Background(), service.CreateShipCommand{FuelCapacity: 1, WeightCapacity: 1})

	if !dErrors.HasCode(err, dErrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestCreateShip_RecordsEventForCreatedShip(t *testing.T) {
	ctrl := gomock.NewController(t)
	ships := mocks.NewMockStore(ctrl)
	recorder := mocks.NewMockEventRecorder(ctrl)

	var saved *models.Ship
	ships.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ship *models.Ship) error {
		saved = ship
		return nil
	})
	recorder.EXPECT().
		Record(gomock.Any(), events.AggregateShip, gomock.Any(), events.TypeShipCreated, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, id uuid.UUID, _ events.Type, _ any) error {
			if saved == nil || uuid.UUID(saved.ID) != id {
				t.Fatalf("event recorded for unexpected aggregate %s", id)
			}
			return nil
		})

	svc := service.New(ships, database.NewMemoryTx(0), recorder)
	_, err := svc.CreateShip(context.Background(), service.CreateShipCommand{FuelCapacity: 1, WeightCapacity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
