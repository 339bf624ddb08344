package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"credopass/internal/http/api"

	"github.com/google/uuid"
)

func (c *Client) CreateUser(ctx context.Context, req api.UserCreateRequest) (*api.UserSchema, error) {
	var resp api.UserResponse
	if err := c.do(ctx, http.MethodPost, "/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) UpsertUser(ctx context.Context, req api.UserInsertRequest) (*api.UserSchema, error) {
	var resp api.UserResponse
	if err := c.do(ctx, http.MethodPut, "/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*api.UserSchema, error) {
	var resp api.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+id.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListUsers(ctx context.Context, limit, offset int) (*api.UsersResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var resp api.UsersResponse
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, req api.UserUpdateRequest) (*api.UserSchema, error) {
	var resp api.UserResponse
	if err := c.do(ctx, http.MethodPatch, "/users/"+id.String(), req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id.String(), nil, nil)
}
