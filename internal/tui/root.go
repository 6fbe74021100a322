// Package tui implements the terminal user interface for the lesson-notes
// intake wizard using bubbletea.
package tui

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set from main.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootCmd = &cobra.Command{
	Use:   "lng",
	Short: "Interactive intake wizard for the lesson-notes generator",
	Long: `lng collects lesson-planning details through a step-by-step terminal
wizard, validates them, and submits them to the lesson-notes generation
service. Delivery of the generated notes is confirmed separately via the
contact channel provided during intake.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(configCmd)
}
