package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Service defines the pilot lifecycle operations exposed over HTTP.
type Service interface {
	CreatePilot(ctx context.Context, cmd service.CreatePilotCommand) (*models.View, error)
	GetPilot(ctx context.Context, id domain.PilotID) (*models.View, error)
	Travel(ctx context.Context, id domain.PilotID, cmd service.TravelCommand) (*models.View, error)
	Refuel(ctx context.Context, id domain.PilotID, cmd service.RefuelCommand) (*models.View, error)
	AcceptContract(ctx context.Context, id domain.PilotID, cmd service.AcceptContractCommand) (*models.AcceptedContract, error)
}

// Handler wires pilot endpoints to the pilot service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts read endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pilots/{id}", h.HandleGetPilot)
}

// RegisterWrites mounts mutating endpoints on r, which may carry auth.
func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/pilots", h.HandleCreatePilot)
	r.Put("/pilots/{id}/travel", h.HandleTravel)
	r.Put("/pilots/{id}/refuel", h.HandleRefuel)
	r.Put("/pilots/{id}/acceptContract", h.HandleAcceptContract)
}

func (h *Handler) HandleCreatePilot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreatePilotRequest](w, r, h.logger)
	if !ok {
		return
	}

	pilot, err := h.service.CreatePilot(ctx, req.Command())
	if err != nil {
		h.fail(ctx, w, "failed to create pilot", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, pilot)
}

func (h *Handler) HandleGetPilot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParsePilotID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "pilot not found"))
		return
	}

	pilot, err := h.service.GetPilot(ctx, id)
	if err != nil {
		h.fail(ctx, w, "failed to load pilot", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pilot)
}

func (h *Handler) HandleTravel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pilotID(w, r, service.CodeInvalidTravelData, msgInvalidTravelData)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[TravelRequest](w, r, h.logger)
	if !ok {
		return
	}

	pilot, err := h.service.Travel(ctx, id, req.Command())
	if err != nil {
		h.fail(ctx, w, "failed to travel", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pilot)
}

func (h *Handler) HandleRefuel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pilotID(w, r, service.CodeInvalidRefuelData, msgInvalidRefuelData)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RefuelRequest](w, r, h.logger)
	if !ok {
		return
	}

	pilot, err := h.service.Refuel(ctx, id, req.Command())
	if err != nil {
		h.fail(ctx, w, "failed to refuel", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pilot)
}

func (h *Handler) HandleAcceptContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pilotID(w, r, service.CodeInvalidContractAcceptanceData, msgInvalidContractAcceptanceData)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AcceptContractRequest](w, r, h.logger)
	if !ok {
		return
	}

	contract, err := h.service.AcceptContract(ctx, id, req.Command())
	if err != nil {
		h.fail(ctx, w, "failed to accept contract", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, contract)
}

// pilotID parses the {id} path parameter. A malformed id names no pilot, so
// it is reported like any other missing pilot of the operation.
func (h *Handler) pilotID(w http.ResponseWriter, r *http.Request, code, message string) (domain.PilotID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := domain.ParsePilotID(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.NewValidation(code, message, dErrors.Entry{
			Code:    service.CodePilotNotFound,
			Message: "There is no pilot associated with this id \"" + raw + "\"!",
		}))
		return domain.PilotID{}, false
	}
	return id, true
}

// fail writes err, logging only failures that are not the client's doing.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeNotFound:
		h.logger.InfoContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	default:
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
