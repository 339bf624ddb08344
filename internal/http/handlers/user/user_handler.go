package user

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

type userService interface {
	Create(ctx context.Context, req api.UserCreateRequest) (*api.UserSchema, error)
	Upsert(ctx context.Context, req api.UserInsertRequest) (*api.UserSchema, error)
	Get(ctx context.Context, userID uuid.UUID) (*api.UserSchema, error)
	List(ctx context.Context, limit, offset int) (*api.UsersResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req api.UserUpdateRequest) (*api.UserSchema, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

func (h *UserHandler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Create")

	var input api.UserCreateRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user created", slog.String("user_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Upsert")

	var input api.UserInsertRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Upsert(r.Context(), input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user saved", slog.String("user_id", resp.ID))
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Get")

	userID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.List")

	limit, err := handlers.IntQuery(r, "limit", 0)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "limit must be a number"))
		return
	}
	offset, err := handlers.IntQuery(r, "offset", 0)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "offset must be a number"))
		return
	}

	resp, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Update")

	userID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var input api.UserUpdateRequest
	if !handlers.DecodeJSON(w, r, log, &input) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, input)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user updated", slog.String("user_id", resp.ID))
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.user.Delete")

	userID, ok := handlers.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user deleted", slog.String("user_id", userID.String()))
	render.NoContent(w, r)
}
