package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobpilot/internal/render"
	"github.com/jonathan/jobpilot/internal/types"
)

var (
	registerEmail      string
	registerPassword   string
	registerName       string
	registerPhone      string
	registerResumeFile string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password (min 8 characters)")
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Full name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerResumeFile, "resume-file", "", "Path to a plain-text resume to attach to the profile")

	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	req := &types.RegisterRequest{
		Email:    registerEmail,
		Password: registerPassword,
		FullName: registerName,
		Phone:    registerPhone,
	}

	if registerResumeFile != "" {
		data, err := os.ReadFile(registerResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		req.Resume = string(data)
	}

	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	raw, err := client.Register(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Account created")
	render.NewPrinter(os.Stdout).JSON(raw)
	return nil
}
