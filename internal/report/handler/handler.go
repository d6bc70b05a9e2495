package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/report/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Service defines the reports exposed over HTTP.
type Service interface {
	PlanetsResourcesSummary(ctx context.Context) ([]service.PlanetSummary, error)
	PilotsResourcesSummary(ctx context.Context) ([]service.PilotSummary, error)
	TransactionsLedger(ctx context.Context) ([]service.LedgerEntry, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the report endpoints on r. Reports are read-only.
func (h *Handler) Register(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/planetsResourcesSummary", serve(h, "planets resources summary", h.service.PlanetsResourcesSummary))
		r.Get("/pilotsResourcesSummary", serve(h, "pilots resources summary", h.service.PilotsResourcesSummary))
		r.Get("/transactionsLedger", serve(h, "transactions ledger", h.service.TransactionsLedger))
	})
}

func serve[T any](h *Handler, name string, build func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		report, err := build(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to build report",
				"report", name,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, report)
	}
}
