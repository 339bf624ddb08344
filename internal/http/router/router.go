// Package router mounts the core API handlers on a chi router.
package router

import (
	"log/slog"
	"net/http"

	"credopass/internal/http/api"
	checkinh "credopass/internal/http/handlers/checkin"
	eventh "credopass/internal/http/handlers/event"
	orgh "credopass/internal/http/handlers/organization"
	userh "credopass/internal/http/handlers/user"
	mw "credopass/internal/http/middleware"
	"credopass/internal/lib/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Handlers struct {
	Health       http.HandlerFunc
	User         *userh.UserHandler
	Organization *orgh.OrganizationHandler
	Event        *eventh.EventHandler
	Checkin      *checkinh.CheckinHandler
}

func New(log *slog.Logger, basePath string, auth config.Auth, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, "route not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "method not allowed"))
	})

	if basePath == "" {
		basePath = "/"
	}

	router.Route(basePath, func(r chi.Router) {
		// public methods
		r.Get("/health", h.Health)

		// staff methods
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(auth.AdminSecret, auth.StaffSecret))

			r.Get("/users", h.User.List)
			r.Get("/users/{id}", h.User.Get)

			r.Get("/organizations/{id}", h.Organization.Get)
			r.Get("/organizations/{id}/loyalty/{userId}", h.Organization.GetLoyalty)

			r.Get("/events", h.Event.List)
			r.Get("/events/{id}", h.Event.Get)
			r.Get("/events/{id}/members", h.Event.GetMembers)
			r.Get("/events/{id}/members/{userId}/qr", h.Checkin.IssueQR)
			r.Get("/events/{id}/attendance", h.Event.GetAttendance)
			r.Get("/events/{id}/stats", h.Event.GetStats)
			r.Post("/events/{id}/checkin", h.Checkin.CheckIn)
		})

		// admin methods
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(auth.AdminSecret, auth.StaffSecret))
			r.Use(mw.AdminOnly)

			r.Post("/users", h.User.Create)
			r.Put("/users", h.User.Upsert)
			r.Patch("/users/{id}", h.User.Update)
			r.Delete("/users/{id}", h.User.Delete)

			r.Post("/organizations", h.Organization.Create)

			r.Post("/events", h.Event.Create)
			r.Patch("/events/{id}/status", h.Event.SetStatus)
			r.Delete("/events/{id}", h.Event.Delete)
			r.Post("/events/{id}/members", h.Event.AddMember)
		})
	})

	return router
}
