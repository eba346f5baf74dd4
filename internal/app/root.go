// Package app contains the Cobra command tree for repowatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
)

// exitCode is set by subcommands that map their result to a process
// exit code (scan's health-score convention).
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "repowatch",
	Short: "Project health scanning and guidance",
	Long: `repowatch inspects a source-code directory and produces a composite
health assessment: documentation completeness, license presence,
outstanding work items, dependency inventory, and exposed-secret risk,
rolled into a single score, letter grade, and badge set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("repowatch", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  scan     Scan a project and report its health")
		fmt.Println("  todos    List outstanding work items")
		fmt.Println("  ai       Ask the AI assistant about a project")
		fmt.Println("  shell    Start the interactive shell")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repowatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
