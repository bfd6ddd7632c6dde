// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultAPIBaseURL is used when JOBPILOT_API_URL is not set.
const DefaultAPIBaseURL = "http://localhost:8000"

// DefaultTimeout is the default HTTP request timeout for API calls.
const DefaultTimeout = 30 * time.Second

// Config represents the CLI configuration. Values can come from a JSON file,
// environment variables, or CLI flags; flags win over the file, the file wins
// over built-in defaults.
type Config struct {
	// APIBaseURL is the base URL of the versioned backend (the /api/v1 surface).
	APIBaseURL string `json:"api_url,omitempty"`
	// AgentBaseURL is the base URL of the unversioned agent surface
	// (/health, /api/run-agent, /api/agent/status). Defaults to APIBaseURL.
	AgentBaseURL string `json:"agent_url,omitempty"`
	// TimeoutSeconds bounds each HTTP request. Zero means DefaultTimeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// CredentialFile forces the file-backed credential store instead of the
	// OS keychain. Empty means keychain first, file fallback.
	CredentialFile string `json:"credential_file,omitempty"`
	// Verbose enables detailed diagnostic output.
	Verbose bool `json:"verbose,omitempty"`
}

// FromEnv builds a Config from environment variables. Defaults are not
// applied here: callers layer file and flag overrides on top first, then call
// ApplyDefaults once, so AgentBaseURL can follow an overridden APIBaseURL.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIBaseURL:     os.Getenv("JOBPILOT_API_URL"),
		AgentBaseURL:   os.Getenv("JOBPILOT_AGENT_URL"),
		CredentialFile: os.Getenv("JOBPILOT_CREDENTIAL_FILE"),
	}

	if s := os.Getenv("JOBPILOT_TIMEOUT_SECONDS"); s != "" {
		seconds, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid JOBPILOT_TIMEOUT_SECONDS: %v", err)
		}
		cfg.TimeoutSeconds = seconds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills unset fields with built-in defaults.
func (c *Config) ApplyDefaults() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.AgentBaseURL == "" {
		c.AgentBaseURL = c.APIBaseURL
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"api_url":   c.APIBaseURL,
		"agent_url": c.AgentBaseURL,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: '%s' is not a valid base URL: %s", name, raw)
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	return nil
}

// Timeout returns the configured request timeout, or DefaultTimeout when unset.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.AgentBaseURL == "" {
		result.AgentBaseURL = defaults.AgentBaseURL
	}
	if result.CredentialFile == "" {
		result.CredentialFile = defaults.CredentialFile
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
