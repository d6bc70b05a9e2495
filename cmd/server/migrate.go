package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	planetstore "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/database"
)

var errNoDatabase = errors.New("DATABASE_URL is required for this command")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd.Context(), migrate)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the planet and route universe into the database",
	Long: `Upserts the planets and routes of the universe file (UNIVERSE_FILE, or the
embedded default) and clears the planet cache. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd.Context(), seedUniverse)
	},
}

func withDatabase(ctx context.Context, fn func(context.Context, *app) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if !cfg.PostgresEnabled() {
		return errNoDatabase
	}
	a, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

func migrate(ctx context.Context, a *app) error {
	applied, err := database.Migrate(ctx, a.db, a.logger)
	if err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "migrations applied", "count", applied)
	return nil
}

// seedUniverse upserts the universe in one transaction so a bad file leaves
// the previous universe intact.
func seedUniverse(ctx context.Context, a *app) error {
	u, err := loadUniverse(a.cfg.Federation)
	if err != nil {
		return err
	}
	writer := planetstore.NewPostgres(a.db)
	err = a.tx.RunInTx(ctx, func(ctx context.Context) error {
		return u.Apply(ctx, writer, time.Now().UTC())
	})
	if err != nil {
		return err
	}
	if cached, ok := a.planets.(*planetstore.CachedStore); ok {
		if err := cached.Invalidate(ctx); err != nil {
			a.logger.WarnContext(ctx, "failed to invalidate planet cache", "error", err)
		}
	}
	a.logger.InfoContext(ctx, "universe seeded",
		"planets", len(u.Planets),
		"routes", len(u.Routes),
	)
	return nil
}
