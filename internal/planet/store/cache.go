package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
)

const (
	planetsKey = "federation:universe:planets"
	routesKey  = "federation:universe:routes"
)

// Source is the authoritative universe store behind the cache.
type Source interface {
	ListPlanets(ctx context.Context) ([]*models.Planet, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
}

// RedisClient is the subset of go-redis the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedStore serves planets and routes from Redis, filling it from Source on a
// miss. Concurrent misses for the same key share one Source read. Redis
// failures degrade to reading Source directly.
type CachedStore struct {
	source Source
	redis  RedisClient
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

func NewCached(source Source, client RedisClient, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{source: source, redis: client, ttl: ttl, logger: logger}
}

func (c *CachedStore) ListPlanets(ctx context.Context) ([]*models.Planet, error) {
	var planets []*models.Planet
	err := c.load(ctx, planetsKey, &planets, func(ctx context.Context) (any, error) {
		return c.source.ListPlanets(ctx)
	})
	return planets, err
}

func (c *CachedStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	err := c.load(ctx, routesKey, &routes, func(ctx context.Context) (any, error) {
		return c.source.ListRoutes(ctx)
	})
	return routes, err
}

func (c *CachedStore) FindByID(ctx context.Context, id domain.PlanetID) (*models.Planet, error) {
	planets, err := c.ListPlanets(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range planets {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (c *CachedStore) FindRoute(ctx context.Context, origin, destination domain.PlanetID) (*models.Route, error) {
	routes, err := c.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range routes {
		if routes[i].OriginPlanetID == origin && routes[i].DestinationPlanetID == destination {
			return &routes[i], nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Invalidate drops both cached lists; called after reseeding.
func (c *CachedStore) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, planetsKey, routesKey).Err(); err != nil {
		return fmt.Errorf("invalidate universe cache: %w", err)
	}
	return nil
}

func (c *CachedStore) load(ctx context.Context, key string, dst any, fill func(context.Context) (any, error)) error {
	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dst); jsonErr == nil {
			return nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "universe cache read failed", "key", key, "error", err)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		fresh, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(fresh)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		if err := c.redis.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "universe cache write failed", "key", key, "error", err)
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(v.([]byte), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
