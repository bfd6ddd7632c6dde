package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/jobpilot/internal/types"
)

// TokenResponse represents the credential exchange response. Raw carries the
// complete backend payload for callers that need fields beyond the token.
type TokenResponse struct {
	AccessToken string
	TokenType   string
	Raw         json.RawMessage
}

// tokenPayload covers the token field names seen across backend variants.
type tokenPayload struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The token is returned to the
// caller; persisting it is the caller's concern.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	req := &types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/auth/token", nil, req)
	if err != nil {
		return nil, err
	}

	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &Error{Method: http.MethodPost, Path: "/auth/token", Message: "failed to decode token response", Cause: err}
	}

	token := payload.AccessToken
	if token == "" {
		token = payload.Token
	}
	if token == "" {
		return nil, &Error{Method: http.MethodPost, Path: "/auth/token", Message: "token response contains no token"}
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   payload.TokenType,
		Raw:         raw,
	}, nil
}

// Register creates a new user and returns the backend's response as-is.
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, fmt.Errorf("registration profile is required")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid register request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/auth/register", nil, req)
}
