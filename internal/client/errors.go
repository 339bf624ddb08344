package client

import (
	"log/slog"
	"net/http"

	"credopass/internal/http/api"

	"github.com/go-chi/render"
)

// APIError is a non-2xx response. Error returns the server's cause detail,
// or the status text when the body was not an error document.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
	Stack      string
}

func (e *APIError) Error() string {
	return e.Detail
}

// HandleError returns nil for 2xx responses. Otherwise it reads the error
// body, logs the server stack if one was sent and returns an *APIError.
func (c *Client) HandleError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     http.StatusText(resp.StatusCode),
	}

	var body api.ErrorResponse
	if err := render.DecodeJSON(resp.Body, &body); err != nil {
		c.log.Debug("error body is not json", slog.Int("status", resp.StatusCode))
		return apiErr
	}

	apiErr.Code = body.Error.Code
	switch {
	case body.Error.Cause != nil && body.Error.Cause.Detail != "":
		apiErr.Detail = body.Error.Cause.Detail
	case body.Error.Message != "":
		apiErr.Detail = body.Error.Message
	}

	if body.Error.Cause != nil && body.Error.Cause.Stack != "" {
		apiErr.Stack = body.Error.Cause.Stack
		c.log.Error("api request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code),
			slog.String("stack", apiErr.Stack),
		)
	}

	return apiErr
}
