package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"credopass/internal/http/api"
	"credopass/internal/lib/sl"
	repo "credopass/internal/repository"
	"credopass/internal/service/checkin"
	"credopass/internal/service/event"

	"github.com/go-chi/render"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var knownErrors = []errorMapping{
	{repo.ErrNotFound, http.StatusNotFound, api.ErrCodeNotFound},
	{repo.ErrReferenceNotFound, http.StatusNotFound, api.ErrCodeNotFound},
	{repo.ErrUserExists, http.StatusConflict, api.ErrCodeUserExists},
	{repo.ErrOrgExists, http.StatusConflict, api.ErrCodeOrgExists},
	{repo.ErrMemberExists, http.StatusConflict, api.ErrCodeMemberExists},
	{repo.ErrAlreadyCheckedIn, http.StatusConflict, api.ErrCodeCheckedIn},
	{checkin.ErrCheckinInProgress, http.StatusConflict, api.ErrCodeCheckinInFlight},
	{checkin.ErrEventClosed, http.StatusUnprocessableEntity, api.ErrCodeEventClosed},
	{checkin.ErrNotMember, http.StatusUnprocessableEntity, api.ErrCodeNotMember},
	{checkin.ErrQREventMismatch, http.StatusUnprocessableEntity, api.ErrCodeQREventMismatch},
	{checkin.ErrInvalidQR, http.StatusBadRequest, api.ErrCodeInvalidQR},
	{event.ErrInvalidEventTime, http.StatusBadRequest, api.ErrCodeInvalidEventTime},
}

// RenderError writes the response for a service error. Known domain errors
// keep their message; everything else becomes an opaque 500.
func RenderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	for _, m := range knownErrors {
		if errors.Is(err, m.err) {
			log.Info("request rejected", sl.Err(err))

			render.Status(r, m.status)
			render.JSON(w, r, api.Error(m.code, m.err.Error()))
			return
		}
	}

	log.Error("request failed", sl.Err(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, api.InternalError())
}
