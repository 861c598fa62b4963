package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token. An empty token means "not logged in".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token
type StaticToken string

// Token implements TokenSource
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// RequestIDHeader carries a per-request uuid for correlating client and server logs
const RequestIDHeader = "X-Request-ID"

// endpoint describes one REST call the way a declarative API slice would:
// where it lives, whether it needs the bearer token, and which tags it touches.
type endpoint struct {
	name        string
	method      string
	auth        bool
	provides    []Tag
	invalidates []Tag
}

var (
	registerEndpoint     = endpoint{name: "register", method: http.MethodPost}
	loginEndpoint        = endpoint{name: "login", method: http.MethodPost}
	listTasksEndpoint    = endpoint{name: "getTasks", method: http.MethodGet, auth: true, provides: []Tag{TagTask}}
	createTaskEndpoint   = endpoint{name: "createTask", method: http.MethodPost, auth: true, invalidates: []Tag{TagTask}}
	updateTaskEndpoint   = endpoint{name: "updateTask", method: http.MethodPut, auth: true, invalidates: []Tag{TagTask}}
	deleteTaskEndpoint   = endpoint{name: "deleteTask", method: http.MethodDelete, auth: true, invalidates: []Tag{TagTask}}
	updateStatusEndpoint = endpoint{name: "updateTaskStatus", method: http.MethodPatch, auth: true, invalidates: []Tag{TagTask}}
)

// Client talks to the task API. Auth endpoints live under {base}/api/auth,
// task endpoints under {base}/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	tags       *TagRegistry
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource sets where the bearer token comes from
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// New creates a client for the API at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tags:       NewTagRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API origin without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Tags returns the registry notified after successful mutations
func (c *Client) Tags() *TagRegistry {
	return c.tags
}

// do performs one request. body and out may be nil.
func (c *Client) do(ctx context.Context, ep endpoint, path, rawQuery string, body, out any) error {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", ep.name, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", ep.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	if ep.auth && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("api request failed", "endpoint", ep.name, "request_id", requestID, "error", err)
		return fmt.Errorf("failed to reach %s: %w", c.baseURL, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Error("Error closing response body", "error", closeErr)
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", ep.name, err)
	}

	slog.Debug("api request",
		"endpoint", ep.name,
		"method", ep.method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(ep.method, path, resp.StatusCode, respBody)
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", ep.name, err)
		}
	}

	c.tags.Invalidate(ep.invalidates...)
	return nil
}
