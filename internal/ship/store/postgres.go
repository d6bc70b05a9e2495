package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

const shipColumns = `id, fuel_capacity, fuel_level, weight_capacity, current_weight, created_at, updated_at`

// PostgresStore persists ships in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) tx.Executor {
	return tx.Pick(ctx, s.db)
}

func (s *PostgresStore) Create(ctx context.Context, ship *models.Ship) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO ships (`+shipColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ship.ID, ship.FuelCapacity, ship.FuelLevel, ship.WeightCapacity, ship.CurrentWeight,
		ship.CreatedAt, ship.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ship: %w", database.Classify(err))
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.ShipID) (*models.Ship, error) {
	return s.find(ctx, `SELECT `+shipColumns+` FROM ships WHERE id = $1`, id)
}

// FindByIDForUpdate locks the ship row until the surrounding transaction ends.
func (s *PostgresStore) FindByIDForUpdate(ctx context.Context, id domain.ShipID) (*models.Ship, error) {
	if !tx.Active(ctx) {
		return nil, fmt.Errorf("lock ship %s: %w", id, sentinel.ErrInvalidState)
	}
	return s.find(ctx, `SELECT `+shipColumns+` FROM ships WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresStore) find(ctx context.Context, query string, id domain.ShipID) (*models.Ship, error) {
	var ship models.Ship
	err := s.execer(ctx).QueryRowContext(ctx, query, id).Scan(
		&ship.ID, &ship.FuelCapacity, &ship.FuelLevel, &ship.WeightCapacity, &ship.CurrentWeight,
		&ship.CreatedAt, &ship.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find ship: %w", err)
	}
	return &ship, nil
}

func (s *PostgresStore) Update(ctx context.Context, ship *models.Ship) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE ships
		SET fuel_level = $2, current_weight = $3, updated_at = $4
		WHERE id = $1`,
		ship.ID, ship.FuelLevel, ship.CurrentWeight, ship.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ship: %w", database.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update ship: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
