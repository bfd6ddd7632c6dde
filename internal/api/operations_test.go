package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/types"
)

// TestOperations_MethodAndPath verifies that every client operation issues
// exactly one request with its documented method and path.
func TestOperations_MethodAndPath(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantQuery  string
	}{
		{
			name: "login",
			call: func(c *Client) error {
				_, err := c.Login(context.Background(), "user@example.com", "pw")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/auth/token",
		},
		{
			name: "register",
			call: func(c *Client) error {
				_, err := c.Register(context.Background(), &types.RegisterRequest{Email: "u@example.com", Password: "longenough"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/auth/register",
		},
		{
			name: "dashboard stats",
			call: func(c *Client) error {
				_, err := c.DashboardStats(context.Background())
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/reports/dashboard",
		},
		{
			name: "search jobs",
			call: func(c *Client) error {
				_, err := c.SearchJobs(context.Background(), &types.SearchRequest{Query: "golang"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/jobs/search",
		},
		{
			name: "list jobs",
			call: func(c *Client) error {
				_, err := c.Jobs(context.Background(), nil)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/jobs",
		},
		{
			name: "get job",
			call: func(c *Client) error {
				_, err := c.Job(context.Background(), "job-42")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/jobs/job-42",
		},
		{
			name: "list applications",
			call: func(c *Client) error {
				_, err := c.Applications(context.Background(), nil)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/applications",
		},
		{
			name: "create application",
			call: func(c *Client) error {
				_, err := c.CreateApplication(context.Background(), json.RawMessage(`{"job_id":"j1"}`))
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/applications",
		},
		{
			name: "batch apply",
			call: func(c *Client) error {
				_, err := c.BatchApply(context.Background(), []string{"j1", "j2"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/applications/batch-apply",
		},
		{
			name: "update application",
			call: func(c *Client) error {
				_, err := c.UpdateApplication(context.Background(), "app-7", &types.UpdateApplicationRequest{Status: "submitted"})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/applications/app-7",
		},
		{
			name: "analytics default window",
			call: func(c *Client) error {
				_, err := c.Analytics(context.Background(), 0)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/reports/analytics",
			wantQuery:  "days=30",
		},
		{
			name: "analytics custom window",
			call: func(c *Client) error {
				_, err := c.Analytics(context.Background(), 90)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/reports/analytics",
			wantQuery:  "days=90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb := newMockBackend(t)
			if tt.name == "login" {
				mb.response = `{"access_token":"tok","token_type":"bearer"}`
			}
			c := mb.client(t, nil)

			require.NoError(t, tt.call(c))
			require.Len(t, mb.requests, 1, "expected exactly one HTTP request")

			req := mb.requests[0]
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)
			if tt.wantQuery != "" {
				assert.Equal(t, tt.wantQuery, req.Query)
			}
		})
	}
}

func TestJobs_FiltersBecomeQueryParameters(t *testing.T) {
	mb := newMockBackend(t)
	c := mb.client(t, nil)

	filters := map[string][]string{"status": {"active"}, "company": {"Initech"}}
	_, err := c.Jobs(context.Background(), filters)
	require.NoError(t, err)

	req := mb.lastRequest(t)
	assert.Equal(t, "company=Initech&status=active", req.Query)
}

func TestJob_EscapesID(t *testing.T) {
	mb := newMockBackend(t)
	c := mb.client(t, nil)

	_, err := c.Job(context.Background(), "jobs/../../etc")
	require.NoError(t, err)

	// The raw ID must not introduce extra path segments.
	req := mb.lastRequest(t)
	assert.NotContains(t, req.Path, "/etc")
}

func TestJob_RequiresID(t *testing.T) {
	mb := newMockBackend(t)
	c := mb.client(t, nil)

	_, err := c.Job(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, mb.requests, "no request should be issued")
}

func TestBatchApply_RejectsEmptyListWithoutRequest(t *testing.T) {
	mb := newMockBackend(t)
	c := mb.client(t, nil)

	_, err := c.BatchApply(context.Background(), nil)
	require.Error(t, err)
	assert.Empty(t, mb.requests, "no request should be issued")
}

func TestBatchApply_SendsJobIDs(t *testing.T) {
	mb := newMockBackend(t)
	c := mb.client(t, nil)

	_, err := c.BatchApply(context.Background(), []string{"j1", "j2", "j3"})
	require.NoError(t, err)

	var sent types.BatchApplyRequest
	require.NoError(t, json.Unmarshal(mb.lastRequest(t).Body, &sent))
	assert.Equal(t, []string{"j1", "j2", "j3"}, sent.JobIDs)
}
