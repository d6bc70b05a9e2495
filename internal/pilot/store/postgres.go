package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

const pilotColumns = `id, certification, name, age, credits, current_location_id, ship_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanPilot(row scanner) (*models.Pilot, error) {
	var (
		p      models.Pilot
		shipID *domain.ShipID
	)
	if err := row.Scan(&p.ID, &p.Certification, &p.Name, &p.Age, &p.Credits, &p.CurrentLocationID,
		&shipID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ShipID = shipID
	return &p, nil
}

// PostgresPilotStore persists pilots in PostgreSQL. The unique constraints on
// certification and ship_id surface as sentinel.ErrConflict.
type PostgresPilotStore struct {
	db *sql.DB
}

func NewPostgresPilotStore(db *sql.DB) *PostgresPilotStore {
	return &PostgresPilotStore{db: db}
}

func (s *PostgresPilotStore) execer(ctx context.Context) tx.Executor {
	return tx.Pick(ctx, s.db)
}

func (s *PostgresPilotStore) Create(ctx context.Context, p *models.Pilot) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO pilots (`+pilotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Certification, p.Name, p.Age, p.Credits, p.CurrentLocationID, p.ShipID,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pilot: %w", database.Classify(err))
	}
	return nil
}

func (s *PostgresPilotStore) FindByID(ctx context.Context, id domain.PilotID) (*models.Pilot, error) {
	return s.findOne(ctx, `SELECT `+pilotColumns+` FROM pilots WHERE id = $1`, id)
}

// FindByIDForUpdate locks the pilot row until the transaction ends. Pilot
// rows are always locked before ships, contracts and resources.
func (s *PostgresPilotStore) FindByIDForUpdate(ctx context.Context, id domain.PilotID) (*models.Pilot, error) {
	if !tx.Active(ctx) {
		return nil, fmt.Errorf("lock pilot %s: %w", id, sentinel.ErrInvalidState)
	}
	return s.findOne(ctx, `SELECT `+pilotColumns+` FROM pilots WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresPilotStore) FindByShipID(ctx context.Context, shipID domain.ShipID) (*models.Pilot, error) {
	return s.findOne(ctx, `SELECT `+pilotColumns+` FROM pilots WHERE ship_id = $1`, shipID)
}

func (s *PostgresPilotStore) FindByCertification(ctx context.Context, certification string) (*models.Pilot, error) {
	return s.findOne(ctx, `SELECT `+pilotColumns+` FROM pilots WHERE certification = $1`, certification)
}

func (s *PostgresPilotStore) findOne(ctx context.Context, query string, args ...any) (*models.Pilot, error) {
	p, err := scanPilot(s.execer(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pilot: %w", err)
	}
	return p, nil
}

func (s *PostgresPilotStore) Update(ctx context.Context, p *models.Pilot) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE pilots
		SET credits = $2, current_location_id = $3, ship_id = $4, updated_at = $5
		WHERE id = $1`,
		p.ID, p.Credits, p.CurrentLocationID, p.ShipID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pilot: %w", database.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pilot: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresPilotStore) List(ctx context.Context) ([]*models.Pilot, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT `+pilotColumns+` FROM pilots ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list pilots: %w", err)
	}
	defer rows.Close()

	var out []*models.Pilot
	for rows.Next() {
		p, err := scanPilot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pilot: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PostgresRefillStore persists the refill history.
type PostgresRefillStore struct {
	db *sql.DB
}

func NewPostgresRefillStore(db *sql.DB) *PostgresRefillStore {
	return &PostgresRefillStore{db: db}
}

func (s *PostgresRefillStore) Create(ctx context.Context, r *models.Refill) error {
	_, err := tx.Pick(ctx, s.db).ExecContext(ctx, `
		INSERT INTO refills (id, pilot_id, amount, cost, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.PilotID, r.Amount, r.Cost, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refill: %w", database.Classify(err))
	}
	return nil
}

func (s *PostgresRefillStore) List(ctx context.Context) ([]*models.Refill, error) {
	rows, err := tx.Pick(ctx, s.db).QueryContext(ctx, `
		SELECT id, pilot_id, amount, cost, created_at
		FROM refills
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list refills: %w", err)
	}
	defer rows.Close()

	var out []*models.Refill
	for rows.Next() {
		var r models.Refill
		if err := rows.Scan(&r.ID, &r.PilotID, &r.Amount, &r.Cost, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan refill: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
