package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Service defines the read operations exposed over HTTP.
type Service interface {
	ListPlanets(ctx context.Context) ([]*models.Planet, error)
	ListRoutes(ctx context.Context) ([]service.RouteDetail, error)
}

// Handler wires planet endpoints to the planet service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts planet endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/planets", h.HandleListPlanets)
	r.Get("/planets/routes", h.HandleListRoutes)
}

// HandleListPlanets handles GET /planets.
func (h *Handler) HandleListPlanets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	planets, err := h.service.ListPlanets(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list planets",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, planets)
}

// HandleListRoutes handles GET /planets/routes.
func (h *Handler) HandleListRoutes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	routes, err := h.service.ListRoutes(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list routes",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, routes)
}
