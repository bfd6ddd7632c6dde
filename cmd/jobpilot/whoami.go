package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/credentials"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored credential",
	Long:  "Show what can be inspected locally about the stored token: subject and expiry for JWTs, presence only for opaque tokens.",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	token, err := store.Token()
	if errors.Is(err, credentials.ErrNotFound) {
		fmt.Fprintln(os.Stdout, "Not logged in")
		return nil
	}
	if err != nil {
		return err
	}

	info := credentials.Inspect(token)
	if info.Opaque {
		fmt.Fprintln(os.Stdout, "Logged in (opaque token)")
		return nil
	}

	if info.Subject != "" {
		fmt.Fprintf(os.Stdout, "Logged in as %s\n", info.Subject)
	} else {
		fmt.Fprintln(os.Stdout, "Logged in")
	}
	if !info.ExpiresAt.IsZero() {
		fmt.Fprintf(os.Stdout, "Token expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04 MST"))
	}
	return nil
}
