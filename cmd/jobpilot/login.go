package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/credentials"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the API token",
	Long:  "Exchange email and password for a bearer token and store it in the OS keychain (or the configured credential file).",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (or set JOBPILOT_PASSWORD)")

	loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	password := loginPassword
	if password == "" {
		password = os.Getenv("JOBPILOT_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("password is required: pass --password or set JOBPILOT_PASSWORD")
	}

	client, store, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.Login(cmd.Context(), loginEmail, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := store.Save(resp.AccessToken); err != nil {
		return fmt.Errorf("logged in but failed to store token: %w", err)
	}

	info := credentials.Inspect(resp.AccessToken)
	if info.Opaque || info.ExpiresAt.IsZero() {
		fmt.Fprintf(os.Stdout, "Logged in as %s\n", loginEmail)
	} else {
		fmt.Fprintf(os.Stdout, "Logged in as %s (token expires %s)\n", loginEmail, info.ExpiresAt.Format("2006-01-02 15:04 MST"))
	}
	return nil
}
