//go:build integration

package federation

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracthandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/handler"
	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	contractservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service"
	contractstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	eventstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	pilothandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/handler"
	pilotmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	pilotservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/service"
	pilotstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/store"
	planethandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/handler"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	planetservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/service"
	planetstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store/seed"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/config"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	reporthandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/report/handler"
	reportservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/report/service"
	shiphandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/handler"
	shipmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	shipservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service"
	shipstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/store"
	httptransport "github.com/henriqueinonhe/intergalactic-federation-api/internal/transport/http"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/testutil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/testutil/containers"
)

type stack struct {
	router http.Handler
	outbox *eventstore.PostgresStore
	redis  *containers.RedisContainer
}

// newStack wires every module over Postgres with planet reads cached in Redis.
func newStack(t *testing.T) *stack {
	t.Helper()
	ctx := context.Background()
	pg := containers.GetManager().GetPostgres(t)
	rd := containers.GetManager().GetRedis(t)
	require.NoError(t, pg.TruncateTables(ctx, "outbox", "resources", "contracts", "refills", "pilots", "ships"))
	require.NoError(t, rd.FlushAll(ctx))

	db := pg.DB
	u, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, u.Apply(ctx, planetstore.NewPostgres(db), time.Now()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	tx := database.NewTxRunner(db, 5*time.Second)
	outbox := eventstore.NewPostgres(db)
	recorder := events.NewRecorder(outbox)

	planets := planetstore.NewCached(planetstore.NewPostgres(db), rd.Client, time.Minute, logger)
	ships := shipstore.NewPostgres(db)
	contracts := contractstore.NewPostgresContractStore(db)
	resources := contractstore.NewPostgresResourceStore(db)
	pilots := pilotstore.NewPostgresPilotStore(db)
	refills := pilotstore.NewPostgresRefillStore(db)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger: logger,
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
		Health: map[string]httptransport.HealthCheck{
			"postgres": db.PingContext,
			"redis":    func(ctx context.Context) error { return rd.Client.Ping(ctx).Err() },
		},
	},
		planethandler.New(planetservice.New(planets), logger),
		shiphandler.New(shipservice.New(ships, tx, recorder), logger),
		contracthandler.New(contractservice.New(contracts, resources, planets, tx, recorder), logger),
		pilothandler.New(pilotservice.New(pilotservice.Stores{
			Pilots:    pilots,
			Refills:   refills,
			Ships:     ships,
			Planets:   planets,
			Contracts: contracts,
			Resources: resources,
		}, tx, recorder), logger),
		reporthandler.New(reportservice.New(reportservice.Stores{
			Planets:   planets,
			Pilots:    pilots,
			Refills:   refills,
			Contracts: contracts,
			Resources: resources,
		}), logger),
	)
	return &stack{router: router, outbox: outbox, redis: rd}
}

func send[T any](t *testing.T, router http.Handler, method, path string, body any, status int) *T {
	t.Helper()
	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, method, path, body))
	testutil.AssertStatus(t, rr, status)
	return testutil.UnmarshalResponse[T](t, rr)
}

func TestPilotLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	s := newStack(t)
	andvari := planetmodels.PlanetIDFor("Andvari").String()
	aqua := planetmodels.PlanetIDFor("Aqua").String()

	var (
		pilot    *pilotmodels.View
		contract *contractmodels.View
	)

	testutil.Given(t, "a pilot with a ship at Andvari and an open contract to Aqua", func(t *testing.T) {
		ship := send[shipmodels.Ship](t, s.router, http.MethodPost, "/ships", map[string]any{
			"fuelCapacity": 200, "fuelLevel": 50, "weightCapacity": 500, "currentWeight": 0,
		}, http.StatusCreated)
		pilot = send[pilotmodels.View](t, s.router, http.MethodPost, "/pilots", map[string]any{
			"certification":     "1000009",
			"name":              "Leia Organa",
			"age":               25,
			"credits":           "200.5",
			"currentLocationId": andvari,
			"shipId":            ship.ID.String(),
		}, http.StatusCreated)
		ore := send[contractmodels.Resource](t, s.router, http.MethodPost, "/resources", map[string]any{"name": "ore", "weight": 120}, http.StatusCreated)
		contract = send[contractmodels.View](t, s.router, http.MethodPost, "/contracts", map[string]any{
			"description":         "Ore haul",
			"payload":             []string{ore.ID.String()},
			"originPlanetId":      andvari,
			"destinationPlanetId": aqua,
			"value":               "99.5",
		}, http.StatusCreated)

		keys, err := s.redis.Keys(context.Background(), "federation:universe:*")
		require.NoError(t, err)
		assert.NotEmpty(t, keys)
	})

	testutil.When(t, "the pilot accepts the contract and flies to Aqua", func(t *testing.T) {
		path := "/pilots/" + pilot.ID.String()
		send[pilotmodels.AcceptedContract](t, s.router, http.MethodPut, path+"/acceptContract",
			map[string]any{"contractId": contract.ID.String()}, http.StatusOK)
		pilot = send[pilotmodels.View](t, s.router, http.MethodPut, path+"/travel",
			map[string]any{"destinationPlanetId": aqua}, http.StatusOK)

		testutil.Then(t, "the pilot is paid and the ship unloaded", func(t *testing.T) {
			assert.Equal(t, "300", pilot.Credits.String())
			assert.Equal(t, int64(37), pilot.Ship.FuelLevel)
			assert.Equal(t, int64(0), pilot.Ship.CurrentWeight)
			assert.Equal(t, aqua, pilot.CurrentLocationID.String())
		})

		testutil.Then(t, "the contract is fulfilled", func(t *testing.T) {
			got := send[contractmodels.View](t, s.router, http.MethodGet, "/contracts/"+contract.ID.String(), nil, http.StatusOK)
			assert.Equal(t, contractmodels.StatusFulfilled, got.Status)
			require.NotNil(t, got.FulfilledAt)
		})

		testutil.Then(t, "the pilot summary reports the delivered ore", func(t *testing.T) {
			rr := testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/reports/pilotsResourcesSummary"))
			testutil.AssertStatusOK(t, rr)
			summary := *testutil.UnmarshalResponse[[]struct {
				Resources map[string]int64 `json:"resources"`
			}](t, rr)
			require.Len(t, summary, 1)
			assert.Equal(t, map[string]int64{"ore": 120}, summary[0].Resources)
		})

		testutil.Then(t, "every state change is in the outbox in order", func(t *testing.T) {
			pending, err := s.outbox.FetchUnpublished(context.Background(), 100)
			require.NoError(t, err)
			types := make([]events.Type, 0, len(pending))
			for _, e := range pending {
				types = append(types, e.Type)
			}
			require.Len(t, types, 7)
			assert.Equal(t, []events.Type{
				events.TypeShipCreated,
				events.TypePilotCreated,
				events.TypeResourceCreated,
				events.TypeContractCreated,
				events.TypeContractAccepted,
			}, types[:5])
			// the arrival leg shares one timestamp
			assert.ElementsMatch(t, []events.Type{
				events.TypeContractFulfilled,
				events.TypePilotTravelled,
			}, types[5:])
		})
	})

	testutil.Then(t, "health reports both backends up", func(t *testing.T) {
		testutil.AssertStatusOK(t, testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/health")))
	})
}
