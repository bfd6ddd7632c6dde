package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/render"
	"github.com/jonathan/jobpilot/internal/schemas"
	"github.com/jonathan/jobpilot/internal/types"
)

var appsCmd = &cobra.Command{
	Use:     "apps",
	Aliases: []string{"applications"},
	Short:   "Manage applications",
}

var (
	appsListStatus string
	appsListJobID  string
	appsListLimit  int
)

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	RunE:  runAppsList,
}

var appsCreateData string

var appsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an application",
	Long:  "Create an application from a JSON payload. Pass the payload inline with --data, or read it from a file with --data @path/to/payload.json. The payload is schema-checked locally before it is sent.",
	RunE:  runAppsCreate,
}

var (
	appsUpdateStatus string
	appsUpdateNotes  string
)

var appsUpdateCmd = &cobra.Command{
	Use:   "update <application-id>",
	Short: "Update an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppsUpdate,
}

var appsBatchApplyCmd = &cobra.Command{
	Use:   "batch-apply <job-id> [job-id...]",
	Short: "Apply to several jobs in one request",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAppsBatchApply,
}

func init() {
	appsListCmd.Flags().StringVar(&appsListStatus, "status", "", "Filter by application status")
	appsListCmd.Flags().StringVar(&appsListJobID, "job", "", "Filter by job ID")
	appsListCmd.Flags().IntVar(&appsListLimit, "limit", 0, "Maximum number of applications to return")

	appsCreateCmd.Flags().StringVarP(&appsCreateData, "data", "d", "", "Application JSON payload, or @file (required)")
	appsCreateCmd.MarkFlagRequired("data")

	appsUpdateCmd.Flags().StringVar(&appsUpdateStatus, "status", "", "New application status")
	appsUpdateCmd.Flags().StringVar(&appsUpdateNotes, "notes", "", "Notes to attach")

	appsCmd.AddCommand(appsListCmd, appsCreateCmd, appsUpdateCmd, appsBatchApplyCmd)
	rootCmd.AddCommand(appsCmd)
}

// readPayload resolves a --data argument: inline JSON, or @file contents.
func readPayload(arg string) (json.RawMessage, error) {
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		return json.RawMessage(data), nil
	}
	return json.RawMessage(arg), nil
}

func runAppsList(cmd *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	filters := url.Values{}
	if appsListStatus != "" {
		filters.Set("status", appsListStatus)
	}
	if appsListJobID != "" {
		filters.Set("job_id", appsListJobID)
	}
	if appsListLimit > 0 {
		filters.Set("limit", strconv.Itoa(appsListLimit))
	}

	raw, err := client.Applications(cmd.Context(), filters)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runAppsCreate(cmd *cobra.Command, _ []string) error {
	payload, err := readPayload(appsCreateData)
	if err != nil {
		return err
	}

	if err := schemas.ValidateApplication(string(payload)); err != nil {
		return fmt.Errorf("invalid application payload: %w", err)
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := client.CreateApplication(cmd.Context(), payload)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runAppsUpdate(cmd *cobra.Command, args []string) error {
	if appsUpdateStatus == "" && appsUpdateNotes == "" {
		return fmt.Errorf("nothing to update: pass --status and/or --notes")
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	patch := &types.UpdateApplicationRequest{
		Status: appsUpdateStatus,
		Notes:  appsUpdateNotes,
	}

	raw, err := client.UpdateApplication(cmd.Context(), args[0], patch)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runAppsBatchApply(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := client.BatchApply(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("batch apply failed: %w", err)
	}

	// One aggregate result; any per-job outcome reporting is the backend's.
	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}
