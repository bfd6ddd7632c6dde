package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobpilot/internal/render"
)

var overviewDays int

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show dashboard metrics and analytics together",
	Long:  "Fetch the dashboard metrics and the analytics report concurrently and print both summaries.",
	RunE:  runOverview,
}

func init() {
	overviewCmd.Flags().IntVar(&overviewDays, "days", 30, "Analytics window in days")
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	var stats, analytics json.RawMessage

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		stats, err = client.DashboardStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		analytics, err = client.Analytics(ctx, overviewDays)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch overview: %w", err)
	}

	printer := render.NewPrinter(os.Stdout)
	printer.Summary("Dashboard", stats)
	printer.Summary(fmt.Sprintf("Analytics (%d days)", overviewDays), analytics)
	return nil
}
