// Package database opens the Postgres pool, applies the embedded schema and
// runs units of work inside transactions.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/config"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/sentinel"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Open connects through the pgx stdlib driver and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// failure, optionally on the named constraint.
func IsUniqueViolation(err error, constraint ...string) bool {
	return hasPgCode(err, uniqueViolation, constraint...)
}

func IsForeignKeyViolation(err error) bool {
	return hasPgCode(err, foreignKeyViolation)
}

func IsCheckViolation(err error) bool {
	return hasPgCode(err, checkViolation)
}

// Classify maps constraint failures onto store sentinels and leaves every
// other error untouched.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return sentinel.ErrNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", sentinel.ErrConflict, constraintName(err))
	case IsCheckViolation(err):
		return fmt.Errorf("%w: %s", sentinel.ErrInvalidState, constraintName(err))
	default:
		return err
	}
}

func hasPgCode(err error, code string, constraint ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	if len(constraint) == 0 {
		return true
	}
	for _, c := range constraint {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
