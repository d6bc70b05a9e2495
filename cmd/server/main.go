package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/config"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:   "federation",
	Short: "Intergalactic federation trading API",
	Long: `Runs the intergalactic federation API: pilots own ships, travel between
planets, and deliver resource contracts for credits.

Configuration is read from the environment (and an optional .env file).
Leaving DATABASE_URL empty runs everything in memory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the process logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg.Logging)
	slog.SetDefault(log)
	return cfg, log, nil
}
