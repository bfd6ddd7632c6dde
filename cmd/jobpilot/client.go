package main

import (
	"fmt"

	"github.com/jonathan/jobpilot/internal/agentapi"
	"github.com/jonathan/jobpilot/internal/api"
	"github.com/jonathan/jobpilot/internal/config"
	"github.com/jonathan/jobpilot/internal/credentials"
)

// loadSettings resolves configuration: flags win over the config file, the
// file wins over environment variables, and the environment carries the
// built-in defaults.
func loadSettings() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	}

	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagAgentURL != "" {
		cfg.AgentBaseURL = flagAgentURL
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the credential store configured for this host.
func openStore(cfg *config.Config) (credentials.Store, error) {
	store, err := credentials.Open(cfg.CredentialFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	return store, nil
}

// tokenSource adapts the credential store to the client's TokenSource.
// A read failure means the request simply goes out unauthenticated.
func tokenSource(store credentials.Store) api.TokenSource {
	return api.TokenSourceFunc(func() string {
		token, err := store.Token()
		if err != nil {
			return ""
		}
		return token
	})
}

// newAPIClient builds the versioned-surface client from resolved settings.
func newAPIClient() (*api.Client, credentials.Store, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := api.New(cfg.APIBaseURL, &api.Options{
		Timeout: cfg.Timeout(),
		Tokens:  tokenSource(store),
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

// newAgentClient builds the agent-surface client from resolved settings.
func newAgentClient() (*agentapi.Client, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	return agentapi.New(cfg.AgentBaseURL, &agentapi.Options{
		Timeout: cfg.Timeout(),
		Tokens:  tokenSource(store),
		Verbose: cfg.Verbose,
	})
}
