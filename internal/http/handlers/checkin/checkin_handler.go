package checkin

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

type checkinService interface {
	CheckIn(ctx context.Context, eventID uuid.UUID, req api.CheckinRequest) (*api.CheckinResponse, error)
	IssueQR(ctx context.Context, eventID, userID uuid.UUID) (string, error)
}

type CheckinHandler struct {
	log     *slog.Logger
	service checkinService
}

func NewCheckinHandler(log *slog.Logger, s checkinService) *CheckinHandler {
	return &CheckinHandler{
		log:     log,
		service: s,
	}
}

type QRResponse struct {
	QRCode string `json:"qrCode"`
}

func (h *CheckinHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkin.CheckIn"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var input api.CheckinRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.CheckIn(r.Context(), eventID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("attendee checked in",
		slog.String("event_id", resp.Attendance.EventID),
		slog.String("user_id", resp.Attendance.UserID),
		slog.String("method", resp.Attendance.Method),
	)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *CheckinHandler) IssueQR(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkin.IssueQR"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	eventID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	userID, ok := handlers.UUIDParam(w, r, "userId")
	if !ok {
		return
	}

	code, err := h.service.IssueQR(r.Context(), eventID, userID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, QRResponse{QRCode: code})
}
