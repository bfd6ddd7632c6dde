package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jonathan/jobpilot/internal/types"
)

// SearchJobs runs a job search with the given criteria.
func (c *Client) SearchJobs(ctx context.Context, criteria *types.SearchRequest) (json.RawMessage, error) {
	if criteria == nil {
		return nil, fmt.Errorf("search criteria are required")
	}
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/jobs/search", nil, criteria)
}

// Jobs lists jobs. filters may be nil; keys are passed through to the backend
// as query parameters.
func (c *Client) Jobs(ctx context.Context, filters url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/jobs", filters, nil)
}

// Job fetches a single job by ID.
func (c *Client) Job(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, fmt.Errorf("job ID is required")
	}
	return c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil)
}
