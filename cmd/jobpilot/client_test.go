package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/credentials"
)

func TestTokenSource_ReturnsStoredToken(t *testing.T) {
	store, err := credentials.Open(filepath.Join(t.TempDir(), "creds.json"))
	require.NoError(t, err)
	require.NoError(t, store.Save("tok-abc"))

	assert.Equal(t, "tok-abc", tokenSource(store).Token())
}

func TestTokenSource_EmptyWhenAbsent(t *testing.T) {
	store, err := credentials.Open(filepath.Join(t.TempDir(), "creds.json"))
	require.NoError(t, err)

	assert.Empty(t, tokenSource(store).Token())
}

func TestNewAPIClient_UsesStoredCredential(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	}))
	defer server.Close()

	credFile := filepath.Join(t.TempDir(), "creds.json")
	t.Setenv("JOBPILOT_CREDENTIAL_FILE", credFile)
	flagAPIURL = server.URL

	client, store, err := newAPIClient()
	require.NoError(t, err)
	require.NoError(t, store.Save("tok-xyz"))

	_, err = client.Jobs(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	assert.Equal(t, "/api/v1/jobs", gotPath)
}

func TestNewAgentClient_TargetsAgentURL(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	t.Setenv("JOBPILOT_CREDENTIAL_FILE", filepath.Join(t.TempDir(), "creds.json"))
	// Only the API URL is given; the agent client must follow it.
	flagAPIURL = server.URL

	client, err := newAgentClient()
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/health", gotPath)
}
