package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"credopass/internal/lib/sl"

	"github.com/go-chi/render"
)

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

const healthcheckTimeout = 2 * time.Second

// Healthcheck answers 200 when every check passes and 503 otherwise.
// Failure details go to the log only.
func Healthcheck(log *slog.Logger, checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		status := "ok"
		details := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Warn("health check failed", slog.String("check", name), sl.Err(err))
				status = "degraded"
				details[name] = "unavailable"
				continue
			}
			details[name] = "ok"
		}

		if status != "ok" {
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, map[string]any{"status": status, "checks": details})
	}
}
