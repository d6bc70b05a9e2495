package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/twmb/franz-go/pkg/kgo"

	contracthandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/handler"
	contractmetrics "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/metrics"
	contractservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service"
	contractstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	eventmetrics "github.com/henriqueinonhe/intergalactic-federation-api/internal/events/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/publisher"
	eventstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	jwttoken "github.com/henriqueinonhe/intergalactic-federation-api/internal/jwt_token"
	pilothandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/handler"
	pilotmetrics "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/metrics"
	pilotservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/service"
	pilotstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/store"
	planethandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/handler"
	planetservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/service"
	planetstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store/seed"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/config"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/kafka"
	platformmetrics "github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/redis"
	reporthandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/report/handler"
	reportmetrics "github.com/henriqueinonhe/intergalactic-federation-api/internal/report/metrics"
	reportservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/report/service"
	shiphandler "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/handler"
	shipmetrics "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/metrics"
	shipservice "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service"
	shipstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/store"
	httptransport "github.com/henriqueinonhe/intergalactic-federation-api/internal/transport/http"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/middleware/ratelimit"
)

// The store unions below let one concrete store serve every service that
// reads it.
type (
	planetStore interface {
		planetservice.Store
		pilotservice.PlanetStore
	}
	shipStore interface {
		shipservice.Store
		pilotservice.ShipStore
	}
	contractStore interface {
		contractservice.ContractStore
		pilotservice.ContractStore
		reportservice.ContractStore
	}
	resourceStore interface {
		contractservice.ResourceStore
		pilotservice.ResourceStore
	}
	pilotStore interface {
		pilotservice.PilotStore
		reportservice.PilotStore
	}
	refillStore interface {
		pilotservice.RefillStore
		reportservice.RefillStore
	}
	outboxStore interface {
		events.Appender
		events.Relay
	}
	txRunner interface {
		RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	}
)

// app holds the connected infrastructure and the stores built on top of it.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	db    *sql.DB
	redis *redis.Client
	kafka *kgo.Client

	tx        txRunner
	planets   planetStore
	ships     shipStore
	contracts contractStore
	resources resourceStore
	pilots    pilotStore
	refills   refillStore
	outbox    outboxStore
}

// connect opens every configured backend. Postgres replaces the in-memory
// stores; Redis fronts planet reads; Kafka receives relayed events.
func connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	if !cfg.PostgresEnabled() {
		logger.WarnContext(ctx, "DATABASE_URL not set, using in-memory stores")
		a.tx = database.NewMemoryTx(cfg.Database.TxTimeout)
		planets := planetstore.NewInMemory()
		u, err := loadUniverse(cfg.Federation)
		if err != nil {
			return nil, err
		}
		if err := u.Apply(ctx, planets, time.Now().UTC()); err != nil {
			return nil, fmt.Errorf("seed in-memory universe: %w", err)
		}
		a.planets = planets
		a.ships = shipstore.NewInMemory()
		a.contracts = contractstore.NewInMemoryContractStore()
		a.resources = contractstore.NewInMemoryResourceStore()
		a.pilots = pilotstore.NewInMemoryPilotStore()
		a.refills = pilotstore.NewInMemoryRefillStore()
		a.outbox = eventstore.NewInMemory()
	} else {
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.tx = database.NewTxRunner(db, cfg.Database.TxTimeout)
		a.planets = planetstore.NewPostgres(db)
		a.ships = shipstore.NewPostgres(db)
		a.contracts = contractstore.NewPostgresContractStore(db)
		a.resources = contractstore.NewPostgresResourceStore(db)
		a.pilots = pilotstore.NewPostgresPilotStore(db)
		a.refills = pilotstore.NewPostgresRefillStore(db)
		a.outbox = eventstore.NewPostgres(db)
	}

	if cfg.RedisEnabled() {
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			a.close()
			return nil, err
		}
		a.redis = client
		a.planets = planetstore.NewCached(a.planets, client, cfg.Redis.RouteCacheTTL, logger)
	}

	if cfg.KafkaEnabled() {
		client, err := kafka.New(ctx, cfg.Kafka)
		if err != nil {
			a.close()
			return nil, err
		}
		a.kafka = client
	}

	logger.InfoContext(ctx, "backends connected", "config", cfg)
	return a, nil
}

func (a *app) close() {
	if a.kafka != nil {
		a.kafka.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// wiring is the assembled process: router dependencies, modules and the
// outbox relay.
type wiring struct {
	deps    httptransport.Deps
	modules []httptransport.Module
	worker  *events.Worker
}

// wire builds every service on the connected stores, registering all metrics
// on reg.
func (a *app) wire(reg *prometheus.Registry) *wiring {
	logger := a.logger
	eventMetrics := eventmetrics.New(reg)
	recorder := events.NewRecorder(a.outbox,
		events.WithRecorderLogger(logger),
		events.WithRecorderMetrics(eventMetrics),
	)

	ships := shipservice.New(a.ships, a.tx, recorder,
		shipservice.WithLogger(logger),
		shipservice.WithMetrics(shipmetrics.New(reg)),
	)
	contracts := contractservice.New(a.contracts, a.resources, a.planets, a.tx, recorder,
		contractservice.WithLogger(logger),
		contractservice.WithMetrics(contractmetrics.New(reg)),
	)
	pilots := pilotservice.New(pilotservice.Stores{
		Pilots:    a.pilots,
		Refills:   a.refills,
		Ships:     a.ships,
		Planets:   a.planets,
		Contracts: a.contracts,
		Resources: a.resources,
	}, a.tx, recorder,
		pilotservice.WithLogger(logger),
		pilotservice.WithMetrics(pilotmetrics.New(reg)),
		pilotservice.WithRefuelCost(amount.FromInt(a.cfg.Federation.RefuelCostPerUnit)),
	)
	reports := reportservice.New(reportservice.Stores{
		Planets:   a.planets,
		Pilots:    a.pilots,
		Refills:   a.refills,
		Contracts: a.contracts,
		Resources: a.resources,
	},
		reportservice.WithLogger(logger),
		reportservice.WithMetrics(reportmetrics.New(reg)),
	)

	deps := httptransport.Deps{
		Logger:      logger,
		HTTPMetrics: platformmetrics.NewHTTP(reg),
		Gatherer:    reg,
		CORS:        a.cfg.CORS,
		TrustProxy:  a.cfg.Server.TrustProxy,
		Health:      a.healthChecks(),
	}
	if a.cfg.RateLimit.Enabled {
		deps.RateLimiter = ratelimit.New(ratelimit.Config{
			Enabled:           true,
			RequestsPerSecond: a.cfg.RateLimit.RequestsPerSecond,
			BurstSize:         a.cfg.RateLimit.BurstSize,
		}, logger)
	}
	if a.cfg.AuthEnabled() {
		deps.Auth = jwttoken.NewJWTServiceAdapter(a.tokens())
	}

	return &wiring{
		deps: deps,
		modules: []httptransport.Module{
			planethandler.New(planetservice.New(a.planets, planetservice.WithLogger(logger)), logger),
			shiphandler.New(ships, logger),
			contracthandler.New(contracts, logger),
			pilothandler.New(pilots, logger),
			reporthandler.New(reports, logger),
		},
		worker: a.worker(eventMetrics),
	}
}

func (a *app) tokens() *jwttoken.JWTService {
	return jwttoken.NewJWTService(a.cfg.Auth.SigningKey, a.cfg.Auth.Issuer, a.cfg.Auth.Audience)
}

func (a *app) healthChecks() map[string]httptransport.HealthCheck {
	checks := map[string]httptransport.HealthCheck{}
	if a.db != nil {
		checks["postgres"] = a.db.PingContext
	}
	if a.redis != nil {
		checks["redis"] = a.redis.Health
	}
	if a.kafka != nil {
		checks["kafka"] = a.kafka.Ping
	}
	return checks
}

// worker relays the outbox to Kafka, or to the log when Kafka is off.
func (a *app) worker(m *eventmetrics.Metrics) *events.Worker {
	var pub events.Publisher = publisher.NewLog(a.logger)
	if a.kafka != nil {
		pub = publisher.NewKafka(a.kafka, a.cfg.Kafka.Topic)
	}
	return events.NewWorker(a.outbox, pub,
		events.WithInterval(a.cfg.Kafka.OutboxPollInterval),
		events.WithBatchSize(a.cfg.Kafka.OutboxBatchSize),
		events.WithWorkerLogger(a.logger),
		events.WithWorkerMetrics(m),
	)
}

func loadUniverse(cfg config.FederationConfig) (*seed.Universe, error) {
	if cfg.UniverseFile != "" {
		return seed.Load(cfg.UniverseFile)
	}
	return seed.Default()
}
