// Package api provides the typed client for the JobPilot backend's versioned
// REST surface (/api/v1). Each method issues exactly one HTTP request and
// returns the backend's response body undecoded; the backend owns all resource
// shapes. There is no retry, caching, or request de-duplication.
package api

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
)

// versionPrefix is the path prefix of the versioned backend surface.
const versionPrefix = "/api/v1"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "jobpilot-cli/1.0"

// TokenSource supplies the bearer token attached to outgoing requests.
// Token returns "" when no credential is available, in which case the
// Authorization header is omitted entirely.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() string

// Token calls f.
func (f TokenSourceFunc) Token() string { return f() }

// Options configures the client.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Tokens     TokenSource
	HTTPClient *http.Client
	Verbose    bool
}

// Client is the JobPilot backend client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	userAgent  string
	verbose    bool
}

// New creates a client for the backend at baseURL.
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

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     opts.Tokens,
		userAgent:  userAgent,
		verbose:    opts.Verbose,
	}, nil
}

// do issues a single request against the versioned surface and returns the
// raw response body. payload may be nil (no body), a json.RawMessage (sent
// as-is), or any JSON-encodable value.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (json.RawMessage, error) {
	fullURL := c.baseURL + versionPrefix + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		var data []byte
		if raw, ok := payload.(json.RawMessage); ok {
			data = raw
		} else {
			encoded, err := json.Marshal(payload)
			if err != nil {
				return nil, &Error{Method: method, Path: path, Message: "failed to encode request body", Cause: err}
			}
			data = encoded
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Bearer token is read from the store on every call; the header is
	// omitted when no credential is stored.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if c.verbose {
		log.Printf("[API] %s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(respBody))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{
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
