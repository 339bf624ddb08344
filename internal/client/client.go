// Package client is the Go client for the core HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"credopass/internal/lib"
	"credopass/internal/lib/config"

	"github.com/go-chi/render"
)

// DefaultBasePath is where the server mounts the core API.
const DefaultBasePath = "/api/core"

const defaultTimeout = 15 * time.Second

var ErrNoHost = errors.New("base url has no host")

// ResolveBaseURL resolves base against host. An absolute base is used as is
// and an empty one falls back to DefaultBasePath.
func ResolveBaseURL(host, base string) (string, error) {
	const op = "client.ResolveBaseURL"

	if base == "" {
		base = DefaultBasePath
	}

	ref, err := url.Parse(base)
	if err != nil {
		return "", lib.Err(op, err)
	}
	if ref.IsAbs() {
		return strings.TrimRight(ref.String(), "/"), nil
	}

	hostURL, err := url.Parse(host)
	if err != nil {
		return "", lib.Err(op, err)
	}
	if hostURL.Host == "" {
		return "", lib.Err(op, ErrNoHost)
	}

	return strings.TrimRight(hostURL.ResolveReference(ref).String(), "/"), nil
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sends the JWT as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a client for the API at baseURL, e.g. the result of ResolveBaseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a client from the tooling config block. Options are
// applied after the config, so they override it.
func NewFromConfig(cfg config.Client, opts ...Option) (*Client, error) {
	const op = "client.NewFromConfig"

	baseURL, err := ResolveBaseURL(cfg.Host, cfg.BaseURL)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := []Option{WithHTTPClient(&http.Client{Timeout: timeout})}
	if cfg.Token != "" {
		base = append(base, WithToken(cfg.Token))
	}

	return New(baseURL, append(base, opts...)...), nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends in as JSON and decodes a 2xx body into out. Either may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	const op = "client.do"

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return lib.Err(op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return lib.Err(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return lib.Err(op, err)
	}
	defer resp.Body.Close()

	if err := c.HandleError(resp); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := render.DecodeJSON(resp.Body, out); err != nil {
		return lib.Err(op, err)
	}

	return nil
}
