package organization

import (
	"context"
	"log/slog"
	"net/http"

	"credopass/internal/http/api"
	"credopass/internal/http/handlers"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type organizationService interface {
	Create(ctx context.Context, name string) (*api.OrganizationSchema, error)
	Get(ctx context.Context, orgID uuid.UUID) (*api.OrganizationSchema, error)
	GetLoyalty(ctx context.Context, orgID, userID uuid.UUID) (*api.LoyaltySchema, error)
}

type OrganizationHandler struct {
	log     *slog.Logger
	service organizationService
}

func NewOrganizationHandler(log *slog.Logger, s organizationService) *OrganizationHandler {
	return &OrganizationHandler{
		log:     log,
		service: s,
	}
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.organization.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.OrganizationCreateRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input.Name)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("organization created", slog.String("organization_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.OrganizationResponse{Organization: *resp})
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.organization.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	orgID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), orgID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.OrganizationResponse{Organization: *resp})
}

func (h *OrganizationHandler) GetLoyalty(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.organization.GetLoyalty"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	orgID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := handlers.UUIDParam(w, r, "userId")
	if !ok {
		return
	}

	resp, err := h.service.GetLoyalty(r.Context(), orgID, userID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.LoyaltyResponse{Loyalty: *resp})
}
