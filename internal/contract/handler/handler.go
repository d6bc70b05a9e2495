package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Service defines the contract market operations exposed over HTTP.
type Service interface {
	CreateContract(ctx context.Context, cmd service.CreateContractCommand) (*models.View, error)
	ListContracts(ctx context.Context, q service.ListQuery) (*service.Page, error)
	GetContract(ctx context.Context, id domain.ContractID) (*models.View, error)
	CreateResource(ctx context.Context, cmd service.CreateResourceCommand) (*models.Resource, error)
	ListResources(ctx context.Context, availableOnly bool) ([]*models.Resource, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts read endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/contracts", h.HandleListContracts)
	r.Get("/contracts/{id}", h.HandleGetContract)
	r.Get("/resources", h.HandleListResources)
}

// RegisterWrites mounts mutating endpoints on r, which may carry auth.
func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/contracts", h.HandleCreateContract)
	r.Post("/resources", h.HandleCreateResource)
}

// ListContractsResponse is the paginated body of GET /contracts.
type ListContractsResponse struct {
	Data []*models.View `json:"data"`
	Meta PageMeta       `json:"meta"`
}

type PageMeta struct {
	NextPageLink     *string `json:"nextPageLink"`
	PreviousPageLink *string `json:"previousPageLink"`
}

func (h *Handler) HandleCreateContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateContractRequest](w, r, h.logger)
	if !ok {
		return
	}

	view, err := h.service.CreateContract(ctx, req.Command())
	if err != nil {
		h.logFailure(ctx, "failed to create contract", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, view)
}

// HandleListContracts handles GET /contracts?status=...&page=...&pageSize=...
func (h *Handler) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.ListContracts(ctx, q)
	if err != nil {
		h.logFailure(ctx, "failed to list contracts", err)
		httputil.WriteError(w, err)
		return
	}

	resp := ListContractsResponse{Data: page.Contracts}
	if page.HasNext {
		resp.Meta.NextPageLink = pageLink(r.URL, page.Page+1, page.PageSize)
	}
	if page.Page > 1 {
		resp.Meta.PreviousPageLink = pageLink(r.URL, page.Page-1, page.PageSize)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// pageLink keeps every other query parameter of u.
func pageLink(u *url.URL, page, pageSize int) *string {
	values := u.Query()
	values.Set("page", strconv.Itoa(page))
	values.Set("pageSize", strconv.Itoa(pageSize))
	link := u.Path + "?" + values.Encode()
	return &link
}

func (h *Handler) HandleGetContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseContractID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "contract not found"))
		return
	}

	view, err := h.service.GetContract(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logFailure(ctx, "failed to load contract", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) HandleCreateResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CreateResourceRequest](w, r, h.logger)
	if !ok {
		return
	}

	resource, err := h.service.CreateResource(ctx, req.Command())
	if err != nil {
		h.logFailure(ctx, "failed to create resource", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resource)
}

// HandleListResources handles GET /resources; ?available=true keeps only
// resources not yet in a payload.
func (h *Handler) HandleListResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	availableOnly, _ := strconv.ParseBool(r.URL.Query().Get("available"))

	resources, err := h.service.ListResources(ctx, availableOnly)
	if err != nil {
		h.logFailure(ctx, "failed to list resources", err)
		httputil.WriteError(w, err)
		return
	}
	if resources == nil {
		resources = []*models.Resource{}
	}
	httputil.WriteJSON(w, http.StatusOK, resources)
}

func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}
