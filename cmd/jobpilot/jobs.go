package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/posting"
	"github.com/jonathan/jobpilot/internal/render"
	"github.com/jonathan/jobpilot/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and search jobs",
}

var (
	jobsListStatus  string
	jobsListCompany string
	jobsListSource  string
	jobsListLimit   int
)

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs known to the backend",
	RunE:  runJobsList,
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Fetch a single job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsGet,
}

var (
	jobsSearchQuery    string
	jobsSearchLocation string
	jobsSearchRemote   bool
	jobsSearchLimit    int
)

var jobsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for jobs",
	RunE:  runJobsSearch,
}

var jobsPreviewBrowser bool

var jobsPreviewCmd = &cobra.Command{
	Use:   "preview <url>",
	Short: "Fetch a job posting page and print its readable text",
	Long:  "Fetch a posting URL directly and strip the page down to the posting text. Use --browser to render JavaScript-heavy job boards with headless Chrome.",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsPreview,
}

func init() {
	jobsListCmd.Flags().StringVar(&jobsListStatus, "status", "", "Filter by job status")
	jobsListCmd.Flags().StringVar(&jobsListCompany, "company", "", "Filter by company")
	jobsListCmd.Flags().StringVar(&jobsListSource, "source", "", "Filter by source board")
	jobsListCmd.Flags().IntVar(&jobsListLimit, "limit", 0, "Maximum number of jobs to return")

	jobsSearchCmd.Flags().StringVarP(&jobsSearchQuery, "query", "q", "", "Search query (required)")
	jobsSearchCmd.Flags().StringVarP(&jobsSearchLocation, "location", "l", "", "Location filter")
	jobsSearchCmd.Flags().BoolVar(&jobsSearchRemote, "remote", false, "Only remote jobs")
	jobsSearchCmd.Flags().IntVar(&jobsSearchLimit, "limit", 0, "Maximum number of results")
	jobsSearchCmd.MarkFlagRequired("query")

	jobsPreviewCmd.Flags().BoolVar(&jobsPreviewBrowser, "browser", false, "Render the page with headless Chrome when plain HTTP yields too little text")

	jobsCmd.AddCommand(jobsListCmd, jobsGetCmd, jobsSearchCmd, jobsPreviewCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	filters := url.Values{}
	if jobsListStatus != "" {
		filters.Set("status", jobsListStatus)
	}
	if jobsListCompany != "" {
		filters.Set("company", jobsListCompany)
	}
	if jobsListSource != "" {
		filters.Set("source", jobsListSource)
	}
	if jobsListLimit > 0 {
		filters.Set("limit", strconv.Itoa(jobsListLimit))
	}

	raw, err := client.Jobs(cmd.Context(), filters)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runJobsGet(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := client.Job(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch job: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runJobsSearch(cmd *cobra.Command, _ []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	criteria := &types.SearchRequest{
		Query:    jobsSearchQuery,
		Location: jobsSearchLocation,
		Limit:    jobsSearchLimit,
	}
	if cmd.Flags().Changed("remote") {
		criteria.Remote = &jobsSearchRemote
	}

	raw, err := client.SearchJobs(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}

func runJobsPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	opts := posting.DefaultOptions()
	opts.Timeout = cfg.Timeout()
	opts.UseBrowser = jobsPreviewBrowser
	opts.Verbose = cfg.Verbose

	page, err := posting.Preview(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("failed to preview posting: %w", err)
	}

	if page.UsedBrowser && cfg.Verbose {
		fmt.Fprintln(os.Stderr, "(rendered with headless browser)")
	}
	fmt.Fprintln(os.Stdout, page.Text)
	return nil
}
