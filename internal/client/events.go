package client

import (
	"context"
	"net/http"
	"net/url"

	"credopass/internal/http/api"

	"github.com/google/uuid"
)

func (c *Client) CreateEvent(ctx context.Context, req api.EventCreateRequest) (*api.EventSchema, error) {
	var resp api.EventResponse
	if err := c.do(ctx, http.MethodPost, "/events", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

func (c *Client) GetEvent(ctx context.Context, id uuid.UUID) (*api.EventSchema, error) {
	var resp api.EventResponse
	if err := c.do(ctx, http.MethodGet, "/events/"+id.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

func (c *Client) ListEvents(ctx context.Context, orgID uuid.UUID) (*api.EventsResponse, error) {
	q := url.Values{}
	q.Set("organizationId", orgID.String())

	var resp api.EventsResponse
	if err := c.do(ctx, http.MethodGet, "/events?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id.String(), nil, nil)
}

// CheckIn records attendance with either a user id or a scanned pass.
func (c *Client) CheckIn(ctx context.Context, eventID uuid.UUID, req api.CheckinRequest) (*api.CheckinResponse, error) {
	var resp api.CheckinResponse
	if err := c.do(ctx, http.MethodPost, "/events/"+eventID.String()+"/checkin", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
