package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jonathan/jobpilot/internal/types"
)

// Applications lists applications. filters may be nil; keys are passed through
// to the backend as query parameters.
func (c *Client) Applications(ctx context.Context, filters url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/applications", filters, nil)
}

// CreateApplication creates an application from a caller-supplied JSON payload.
// The payload shape is owned by the backend; it is sent as-is.
func (c *Client) CreateApplication(ctx context.Context, data json.RawMessage) (json.RawMessage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("application payload is required")
	}
	return c.do(ctx, http.MethodPost, "/applications", nil, data)
}

// BatchApply applies to multiple jobs in one request. The backend returns a
// single aggregate result; any partial-failure semantics are its contract.
func (c *Client) BatchApply(ctx context.Context, jobIDs []string) (json.RawMessage, error) {
	req := &types.BatchApplyRequest{JobIDs: jobIDs}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch-apply request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/applications/batch-apply", nil, req)
}

// UpdateApplication applies a partial update to an application.
func (c *Client) UpdateApplication(ctx context.Context, id string, patch *types.UpdateApplicationRequest) (json.RawMessage, error) {
	if id == "" {
		return nil, fmt.Errorf("application ID is required")
	}
	if patch == nil {
		return nil, fmt.Errorf("application patch is required")
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid application update: %w", err)
	}
	return c.do(ctx, http.MethodPut, "/applications/"+url.PathEscape(id), nil, patch)
}
