package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/render"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate dashboard metrics",
	RunE:  runStats,
}

var (
	analyticsDays int
	analyticsJSON bool
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show time-windowed analytics",
	RunE:  runAnalytics,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the raw JSON payload")

	analyticsCmd.Flags().IntVar(&analyticsDays, "days", 30, "Analytics window in days")
	analyticsCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Print the raw JSON payload")

	rootCmd.AddCommand(statsCmd, analyticsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := client.DashboardStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	printer := render.NewPrinter(os.Stdout)
	if statsJSON {
		printer.JSON(raw)
		return nil
	}
	printer.Summary("Dashboard", raw)
	return nil
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := client.Analytics(cmd.Context(), analyticsDays)
	if err != nil {
		return fmt.Errorf("failed to fetch analytics: %w", err)
	}

	printer := render.NewPrinter(os.Stdout)
	if analyticsJSON {
		printer.JSON(raw)
		return nil
	}
	printer.Summary(fmt.Sprintf("Analytics (%d days)", analyticsDays), raw)
	return nil
}
