package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

const contractColumns = `id, description, origin_planet_id, destination_planet_id, value,
	contractee_id, fulfilled_at, created_at, updated_at`

const resourceColumns = `id, name, weight, contract_id, created_at, updated_at`

var statusClauses = map[models.Status]string{
	models.StatusOpen:      "contractee_id IS NULL",
	models.StatusInEffect:  "(contractee_id IS NOT NULL AND fulfilled_at IS NULL)",
	models.StatusFulfilled: "fulfilled_at IS NOT NULL",
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContract(row scanner) (*models.Contract, error) {
	var (
		c           models.Contract
		contractee  *domain.PilotID
		fulfilledAt sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Description, &c.OriginPlanetID, &c.DestinationPlanetID, &c.Value,
		&contractee, &fulfilledAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ContracteeID = contractee
	if fulfilledAt.Valid {
		at := fulfilledAt.Time
		c.FulfilledAt = &at
	}
	return &c, nil
}

func scanResource(row scanner) (*models.Resource, error) {
	var (
		r          models.Resource
		contractID *domain.ContractID
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Weight, &contractID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ContractID = contractID
	return &r, nil
}

func idStrings[T fmt.Stringer](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// PostgresContractStore persists contracts in PostgreSQL.
type PostgresContractStore struct {
	db *sql.DB
}

func NewPostgresContractStore(db *sql.DB) *PostgresContractStore {
	return &PostgresContractStore{db: db}
}

func (s *PostgresContractStore) execer(ctx context.Context) tx.Executor {
	return tx.Pick(ctx, s.db)
}

func (s *PostgresContractStore) Create(ctx context.Context, c *models.Contract) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO contracts (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Description, c.OriginPlanetID, c.DestinationPlanetID, c.Value,
		c.ContracteeID, c.FulfilledAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", database.Classify(err))
	}
	return nil
}

func (s *PostgresContractStore) FindByID(ctx context.Context, id domain.ContractID) (*models.Contract, error) {
	return s.findOne(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
}

// FindByIDForUpdate locks the contract row until the transaction ends.
func (s *PostgresContractStore) FindByIDForUpdate(ctx context.Context, id domain.ContractID) (*models.Contract, error) {
	if !tx.Active(ctx) {
		return nil, fmt.Errorf("lock contract %s: %w", id, sentinel.ErrInvalidState)
	}
	return s.findOne(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresContractStore) findOne(ctx context.Context, query string, args ...any) (*models.Contract, error) {
	c, err := scanContract(s.execer(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return c, nil
}

func (s *PostgresContractStore) Update(ctx context.Context, c *models.Contract) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE contracts
		SET contractee_id = $2, fulfilled_at = $3, updated_at = $4
		WHERE id = $1`,
		c.ID, c.ContracteeID, c.FulfilledAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", database.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresContractStore) List(ctx context.Context, filter ListFilter) ([]*models.Contract, error) {
	var where []string
	for _, st := range filter.Statuses {
		if clause, ok := statusClauses[st]; ok {
			where = append(where, clause)
		}
	}
	query := `SELECT ` + contractColumns + ` FROM contracts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " OR ")
	}
	query += ` ORDER BY created_at, id LIMIT $1 OFFSET $2`

	limit := any(nil)
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	return s.list(ctx, query, limit, filter.Offset)
}

// ListInEffectForLegForUpdate locks the pilot's unfulfilled contracts for
// exactly the origin to destination leg.
func (s *PostgresContractStore) ListInEffectForLegForUpdate(ctx context.Context, pilotID domain.PilotID, origin, destination domain.PlanetID) ([]*models.Contract, error) {
	if !tx.Active(ctx) {
		return nil, fmt.Errorf("lock contracts of pilot %s: %w", pilotID, sentinel.ErrInvalidState)
	}
	return s.list(ctx, `
		SELECT `+contractColumns+` FROM contracts
		WHERE contractee_id = $1 AND fulfilled_at IS NULL
		  AND origin_planet_id = $2 AND destination_planet_id = $3
		ORDER BY created_at, id
		FOR UPDATE`, pilotID, origin, destination)
}

func (s *PostgresContractStore) ListFulfilled(ctx context.Context) ([]*models.Contract, error) {
	return s.list(ctx, `
		SELECT `+contractColumns+` FROM contracts
		WHERE fulfilled_at IS NOT NULL
		ORDER BY fulfilled_at, id`)
}

func (s *PostgresContractStore) list(ctx context.Context, query string, args ...any) ([]*models.Contract, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	out := []*models.Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}
	return out, nil
}

// PostgresResourceStore persists resources in PostgreSQL.
type PostgresResourceStore struct {
	db *sql.DB
}

func NewPostgresResourceStore(db *sql.DB) *PostgresResourceStore {
	return &PostgresResourceStore{db: db}
}

func (s *PostgresResourceStore) execer(ctx context.Context) tx.Executor {
	return tx.Pick(ctx, s.db)
}

func (s *PostgresResourceStore) Create(ctx context.Context, r *models.Resource) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO resources (`+resourceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Name, r.Weight, r.ContractID, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", database.Classify(err))
	}
	return nil
}

func (s *PostgresResourceStore) FindByID(ctx context.Context, id domain.ResourceID) (*models.Resource, error) {
	r, err := scanResource(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return r, nil
}

// FindManyForUpdate locks the existing resources among ids, in ID order so
// concurrent contract creations cannot deadlock on overlapping payloads.
func (s *PostgresResourceStore) FindManyForUpdate(ctx context.Context, ids []domain.ResourceID) ([]*models.Resource, error) {
	if !tx.Active(ctx) {
		return nil, fmt.Errorf("lock resources: %w", sentinel.ErrInvalidState)
	}
	return s.list(ctx, `
		SELECT `+resourceColumns+` FROM resources
		WHERE id = ANY($1::uuid[])
		ORDER BY id
		FOR UPDATE`, pq.Array(idStrings(ids)))
}

// AttachToContract assigns the resources to contractID. It fails with
// sentinel.ErrConflict when any of them is missing or already assigned.
func (s *PostgresResourceStore) AttachToContract(ctx context.Context, ids []domain.ResourceID, contractID domain.ContractID, now time.Time) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE resources SET contract_id = $1, updated_at = $2
		WHERE id = ANY($3::uuid[]) AND contract_id IS NULL`,
		contractID, now, pq.Array(idStrings(ids)),
	)
	if err != nil {
		return fmt.Errorf("attach resources: %w", database.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach resources: %w", err)
	}
	if int(n) != len(ids) {
		return fmt.Errorf("attach resources: %d of %d attached: %w", n, len(ids), sentinel.ErrConflict)
	}
	return nil
}

func (s *PostgresResourceStore) ListByContracts(ctx context.Context, contractIDs []domain.ContractID) (map[domain.ContractID][]*models.Resource, error) {
	out := make(map[domain.ContractID][]*models.Resource)
	if len(contractIDs) == 0 {
		return out, nil
	}
	resources, err := s.list(ctx, `
		SELECT `+resourceColumns+` FROM resources
		WHERE contract_id = ANY($1::uuid[])
		ORDER BY created_at, id`, pq.Array(idStrings(contractIDs)))
	if err != nil {
		return nil, err
	}
	for _, r := range resources {
		out[*r.ContractID] = append(out[*r.ContractID], r)
	}
	return out, nil
}

func (s *PostgresResourceStore) List(ctx context.Context, availableOnly bool) ([]*models.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources`
	if availableOnly {
		query += ` WHERE contract_id IS NULL`
	}
	return s.list(ctx, query+` ORDER BY created_at, id`)
}

func (s *PostgresResourceStore) list(ctx context.Context, query string, args ...any) ([]*models.Resource, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	out := []*models.Resource{}
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}
	return out, nil
}
