package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/httpserver"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/kafka"
	httptransport "github.com/henriqueinonhe/intergalactic-federation-api/internal/transport/http"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the outbox relay",
	Long: `Starts the HTTP API together with the outbox relay that forwards domain
events to Kafka (or to the log when KAFKA_BROKERS is empty).

Both stop gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply migrations and seed the universe before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	a, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	if serveMigrate && a.db != nil {
		if err := migrate(ctx, a); err != nil {
			return err
		}
		if err := seedUniverse(ctx, a); err != nil {
			return err
		}
	}
	if a.kafka != nil {
		if err := kafka.EnsureTopic(ctx, a.kafka, cfg.Kafka, logger); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	w := a.wire(reg)
	srv := httpserver.New(cfg.Server, httptransport.NewRouter(w.deps, w.modules...))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "federation api listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return w.worker.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
