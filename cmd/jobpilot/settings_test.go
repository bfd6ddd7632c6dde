package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpilot/internal/config"
)

// resetFlags clears the package-level flag variables and restores them when
// the test finishes, so tests cannot leak flag state into each other.
func resetFlags(t *testing.T) {
	t.Helper()
	origConfig, origAPI, origAgent, origVerbose := flagConfig, flagAPIURL, flagAgentURL, flagVerbose
	flagConfig, flagAPIURL, flagAgentURL, flagVerbose = "", "", "", false
	t.Cleanup(func() {
		flagConfig, flagAPIURL, flagAgentURL, flagVerbose = origConfig, origAPI, origAgent, origVerbose
	})
}

// clearEnv blanks the environment variables loadSettings reads.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JOBPILOT_API_URL", "")
	t.Setenv("JOBPILOT_AGENT_URL", "")
	t.Setenv("JOBPILOT_TIMEOUT_SECONDS", "")
	t.Setenv("JOBPILOT_CREDENTIAL_FILE", "")
}

func TestLoadSettings_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, config.DefaultAPIBaseURL, cfg.AgentBaseURL)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout())
}

func TestLoadSettings_APIURLFlagCarriesAgentURL(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	flagAPIURL = "https://prod.example.com"

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://prod.example.com", cfg.APIBaseURL)
	assert.Equal(t, "https://prod.example.com", cfg.AgentBaseURL,
		"agent URL must follow the API URL when not set explicitly")
}

func TestLoadSettings_AgentURLFlagWins(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	flagAPIURL = "https://prod.example.com"
	flagAgentURL = "https://agent.example.com"

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://agent.example.com", cfg.AgentBaseURL)
}

func TestLoadSettings_ExplicitAgentEnvSurvivesAPIFlag(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("JOBPILOT_AGENT_URL", "https://agent.example.com")
	flagAPIURL = "https://prod.example.com"

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://prod.example.com", cfg.APIBaseURL)
	assert.Equal(t, "https://agent.example.com", cfg.AgentBaseURL)
}

func TestLoadSettings_FileOverridesEnv(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("JOBPILOT_API_URL", "https://env.example.com")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_url":"https://file.example.com","timeout_seconds":7}`), 0o600))
	flagConfig = path

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.APIBaseURL)
	assert.Equal(t, 7, cfg.TimeoutSeconds)
}

func TestLoadSettings_FlagOverridesFile(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_url":"https://file.example.com"}`), 0o600))
	flagConfig = path
	flagAPIURL = "https://flag.example.com"

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
}

func TestLoadSettings_VerboseFlag(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	flagVerbose = true

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestLoadSettings_InvalidFlagURL(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	flagAPIURL = "not-a-url"

	_, err := loadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_url")
}

func TestLoadSettings_MissingConfigFile(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	flagConfig = filepath.Join(t.TempDir(), "nope.json")

	_, err := loadSettings()
	require.Error(t, err)
}
