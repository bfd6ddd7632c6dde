package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/agentapi"
	"github.com/jonathan/jobpilot/internal/render"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Control the automation agent",
	Long:  "Talk to the agent runner's own surface (/health, /api/run-agent, /api/agent/status), which is separate from the versioned REST API.",
}

var agentHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe agent health",
	RunE:  runAgentHealth,
}

var agentRunOptions string

var agentRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Trigger an agent run",
	RunE:  runAgentRun,
}

var agentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current agent run status",
	RunE:  runAgentStatus,
}

func init() {
	agentRunCmd.Flags().StringVar(&agentRunOptions, "options", "", "Agent run options as a JSON object, passed through as-is")

	agentCmd.AddCommand(agentHealthCmd, agentRunCmd, agentStatusCmd)
	rootCmd.AddCommand(agentCmd)
}

func runAgentHealth(cmd *cobra.Command, _ []string) error {
	client, err := newAgentClient()
	if err != nil {
		return err
	}

	status, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}

	if status.Healthy() {
		fmt.Fprintf(os.Stdout, "Agent is healthy (%s)\n", status.Status)
		return nil
	}
	return fmt.Errorf("agent reported status %q", status.Status)
}

func runAgentRun(cmd *cobra.Command, _ []string) error {
	client, err := newAgentClient()
	if err != nil {
		return err
	}

	req := &agentapi.RunRequest{}
	if agentRunOptions != "" {
		if !json.Valid([]byte(agentRunOptions)) {
			return fmt.Errorf("--options must be valid JSON")
		}
		req.Options = json.RawMessage(agentRunOptions)
	}

	raw, err := client.RunAgent(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to start agent run: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runAgentStatus(cmd *cobra.Command, _ []string) error {
	client, err := newAgentClient()
	if err != nil {
		return err
	}

	raw, err := client.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch agent status: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}
