// Package main provides the entry point for the JobPilot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagAPIURL   string
	flagAgentURL string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "jobpilot",
	Short: "JobPilot job-application automation CLI",
	Long:  "JobPilot drives the job-application automation backend from the command line: search jobs, create and batch-submit applications, and read dashboard and analytics reports.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Backend base URL (overrides JOBPILOT_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagAgentURL, "agent-url", "", "Agent base URL (overrides JOBPILOT_AGENT_URL)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed request information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
