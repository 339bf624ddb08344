package event

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

type eventService interface {
	Create(ctx context.Context, req api.EventCreateRequest) (*api.EventSchema, error)
	Get(ctx context.Context, eventID uuid.UUID) (*api.EventSchema, error)
	List(ctx context.Context, orgID uuid.UUID) (*api.EventsResponse, error)
	SetStatus(ctx context.Context, eventID uuid.UUID, status string) (*api.EventSchema, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	AddMember(ctx context.Context, eventID, userID uuid.UUID) (*api.MemberSchema, error)
	GetMembers(ctx context.Context, eventID uuid.UUID) (*api.MembersResponse, error)
	GetAttendance(ctx context.Context, eventID uuid.UUID) (*api.AttendanceResponse, error)
	GetStats(ctx context.Context, eventID uuid.UUID) (*api.EventStatsResponse, error)
}

type EventHandler struct {
	log     *slog.Logger
	service eventService
}

func NewEventHandler(log *slog.Logger, s eventService) *EventHandler {
	return &EventHandler{
		log:     log,
		service: s,
	}
}

func (h *EventHandler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.Create")

	var input api.EventCreateRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event created", slog.String("event_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.EventResponse{Event: *resp})
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.Get")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), eventID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.EventResponse{Event: *resp})
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.List")

	orgID, err := uuid.Parse(r.URL.Query().Get("organizationId"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "organizationId is required"))
		return
	}

	resp, err := h.service.List(r.Context(), orgID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *EventHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.SetStatus")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var input api.EventStatusRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.SetStatus(r.Context(), eventID, input.Status)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event status changed", slog.String("event_id", resp.ID), slog.String("status", resp.Status))
	render.JSON(w, r, api.EventResponse{Event: *resp})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.Delete")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("event deleted", slog.String("event_id", eventID.String()))
	render.NoContent(w, r)
}

func (h *EventHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.AddMember")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var input api.AddMemberRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.AddMember(r.Context(), eventID, uuid.MustParse(input.UserID))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("member registered", slog.String("event_id", eventID.String()), slog.String("user_id", input.UserID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *EventHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.GetMembers")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetMembers(r.Context(), eventID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *EventHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.GetAttendance")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetAttendance(r.Context(), eventID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *EventHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.event.GetStats")

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetStats(r.Context(), eventID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}
