package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/api"
)

func TestHealth(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	c, err := New(server.URL, nil)
	require.NoError(t, err)

	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/health", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "ok", status.Status)
	assert.True(t, status.Healthy())
}

func TestHealthStatus_Healthy(t *testing.T) {
	assert.True(t, (&HealthStatus{Status: "healthy"}).Healthy())
	assert.True(t, (&HealthStatus{Status: "OK"}).Healthy())
	assert.False(t, (&HealthStatus{Status: "degraded"}).Healthy())
	assert.False(t, (&HealthStatus{}).Healthy())
}

func TestRunAgent(t *testing.T) {
	var gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"run_id":"r1","status":"started"}`))
	}))
	defer server.Close()

	c, err := New(server.URL, nil)
	require.NoError(t, err)

	raw, err := c.RunAgent(context.Background(), &RunRequest{Options: json.RawMessage(`{"max_jobs":5}`)})
	require.NoError(t, err)
	assert.Equal(t, "/api/run-agent", gotPath)
	assert.Contains(t, string(gotBody), `"max_jobs":5`)
	assert.Equal(t, `{"run_id":"r1","status":"started"}`, string(raw))
}

func TestStatus_AttachesBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"state":"idle"}`))
	}))
	defer server.Close()

	c, err := New(server.URL, &Options{Tokens: api.TokenSourceFunc(func() string { return "tok" })})
	require.NoError(t, err)

	raw, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, `{"state":"idle"}`, string(raw))
}

func TestAgent_ErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "agent busy", http.StatusConflict)
	}))
	defer server.Close()

	c, err := New(server.URL, nil)
	require.NoError(t, err)

	_, err = c.Status(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "agent busy")
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("://notaurl", nil)
	require.Error(t, err)
}

func TestVerbose_LogsRequestLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	c, err := New(server.URL, &Options{Verbose: true})
	require.NoError(t, err)

	_, err = c.Health(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[AGENT] GET /health -> 200")
}
