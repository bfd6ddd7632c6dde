// Package agentapi provides the client for the JobPilot agent's unversioned
// surface (/health, /api/run-agent, /api/agent/status). This surface predates
// the /api/v1 contract and is served by the agent runner, so it gets its own
// client type rather than being folded into the versioned one.
package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobpilot/internal/api"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// HealthStatus represents the agent health probe response.
type HealthStatus struct {
	Status string `json:"status"`
}

// Healthy reports whether the probe result indicates a usable agent.
func (h *HealthStatus) Healthy() bool {
	switch strings.ToLower(h.Status) {
	case "ok", "healthy", "up":
		return true
	}
	return false
}

// RunRequest represents the run-agent trigger payload. The agent owns the
// option semantics; Options is passed through as-is.
type RunRequest struct {
	Options json.RawMessage `json:"options,omitempty"`
}

// Client is the agent surface client. It attaches the same bearer credential
// as the versioned client and propagates failures the same way.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     api.TokenSource
	verbose    bool
}

// Options configures the agent client.
type Options struct {
	Timeout    time.Duration
	Tokens     api.TokenSource
	HTTPClient *http.Client
	Verbose    bool
}

// New creates an agent client for the service at baseURL.
func New(baseURL string, opts *Options) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	if opts == nil {
		opts = &Options{}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     opts.Tokens,
		verbose:    opts.Verbose,
	}, nil
}

// Health probes the agent health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	raw, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, &api.Error{Method: http.MethodGet, Path: "/health", Message: "failed to decode health response", Cause: err}
	}
	return &status, nil
}

// RunAgent triggers an agent run and returns the agent's response as-is.
func (c *Client) RunAgent(ctx context.Context, req *RunRequest) (json.RawMessage, error) {
	if req == nil {
		req = &RunRequest{}
	}
	return c.do(ctx, http.MethodPost, "/api/run-agent", req)
}

// Status fetches the current agent run status.
func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/agent/status", nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &api.Error{Method: method, Path: path, Message: "failed to encode request body", Cause: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &api.Error{Method: method, Path: path, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", api.DefaultUserAgent)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &api.Error{Method: method, Path: path, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &api.Error{Method: method, Path: path, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if c.verbose {
		log.Printf("[AGENT] %s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(respBody))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &api.Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			Body:       string(respBody),
		}
	}

	if len(respBody) == 0 {
		return nil, nil
	}
	return json.RawMessage(respBody), nil
}
