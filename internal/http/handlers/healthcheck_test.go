package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"credopass/internal/http/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestHealthcheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name       string
		checks     map[string]handlers.Check
		wantCode   int
		wantStatus string
		wantRedis  string
	}{
		{"all healthy", map[string]handlers.Check{"postgres": ok, "redis": ok}, http.StatusOK, "ok", "ok"},
		{"redis down", map[string]handlers.Check{"postgres": ok, "redis": down}, http.StatusServiceUnavailable, "degraded", "unavailable"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))

			w := httptest.NewRecorder()
			handlers.Healthcheck(log, c.checks)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, c.wantCode, w.Code)
			assert.NotContains(t, w.Body.String(), "connection refused")

			var body healthBody
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, c.wantStatus, body.Status)
			assert.Equal(t, "ok", body.Checks["postgres"])
			assert.Equal(t, c.wantRedis, body.Checks["redis"])
			if c.wantRedis != "ok" {
				assert.Contains(t, logs.String(), "connection refused")
			}
		})
	}
}
