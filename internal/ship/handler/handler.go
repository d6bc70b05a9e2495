package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/ship/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Service defines the ship operations exposed over HTTP.
type Service interface {
	CreateShip(ctx context.Context, cmd service.CreateShipCommand) (*models.Ship, error)
	GetShip(ctx context.Context, id domain.ShipID) (*models.Ship, error)
}

// Handler wires ship endpoints to the ship service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts read endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/ships/{id}", h.HandleGetShip)
}

// RegisterWrites mounts mutating endpoints on r, which may carry auth.
func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/ships", h.HandleCreateShip)
}

// HandleCreateShip handles POST /ships.
func (h *Handler) HandleCreateShip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateShipRequest](w, r, h.logger)
	if !ok {
		return
	}

	ship, err := h.service.CreateShip(ctx, req.Command())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create ship",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ship)
}

// HandleGetShip handles GET /ships/{id}.
func (h *Handler) HandleGetShip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseShipID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "ship not found"))
		return
	}

	ship, err := h.service.GetShip(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to load ship",
				"request_id", requestcontext.RequestID(ctx),
				"ship_id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ship)
}
