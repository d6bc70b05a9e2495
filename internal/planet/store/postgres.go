package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

// PostgresStore persists the universe in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) tx.Executor {
	return tx.Pick(ctx, s.db)
}

func (s *PostgresStore) UpsertPlanet(ctx context.Context, planet *models.Planet) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO planets (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET updated_at = EXCLUDED.updated_at`,
		planet.ID, planet.Name, planet.CreatedAt, planet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert planet: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpsertRoute(ctx context.Context, route models.Route) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO travelling_data (origin_planet_id, destination_planet_id, fuel_consumption)
		VALUES ($1, $2, $3)
		ON CONFLICT (origin_planet_id, destination_planet_id)
		DO UPDATE SET fuel_consumption = EXCLUDED.fuel_consumption`,
		route.OriginPlanetID, route.DestinationPlanetID, route.FuelConsumption,
	)
	if err != nil {
		return fmt.Errorf("upsert route: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListPlanets(ctx context.Context) ([]*models.Planet, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM planets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	defer rows.Close()

	var out []*models.Planet
	for rows.Next() {
		var p models.Planet
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan planet: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate planets: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.PlanetID) (*models.Planet, error) {
	var p models.Planet
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM planets WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find planet: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT origin_planet_id, destination_planet_id, fuel_consumption
		FROM travelling_data
		ORDER BY origin_planet_id::text, destination_planet_id::text`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var out []models.Route
	for rows.Next() {
		var r models.Route
		if err := rows.Scan(&r.OriginPlanetID, &r.DestinationPlanetID, &r.FuelConsumption); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindRoute(ctx context.Context, origin, destination domain.PlanetID) (*models.Route, error) {
	var r models.Route
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT origin_planet_id, destination_planet_id, fuel_consumption
		FROM travelling_data
		WHERE origin_planet_id = $1 AND destination_planet_id = $2`, origin, destination,
	).Scan(&r.OriginPlanetID, &r.DestinationPlanetID, &r.FuelConsumption)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find route: %w", err)
	}
	return &r, nil
}
