package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repowatch/internal/config"
	"github.com/blackwell-systems/repowatch/internal/health"
	"github.com/blackwell-systems/repowatch/internal/output"
)

var (
	scanFlagPath string
	scanFlagJSON bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a project and report its health",
	Long: `Scan runs every analyzer against the project directory and reports a
composite health score, letter grade, and badge set.

The process exit code follows the health score: 0 when the score is at
least 80, 1 when at least 60, and 2 otherwise.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlagPath, "path", "p", ".", "Project path to scan")
	scanCmd.Flags().BoolVar(&scanFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPrefs(cfg)

	report, err := health.Scan(scanFlagPath, scanOptions(cfg))
	if err != nil {
		return err
	}

	if scanFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		output.RenderReport(os.Stdout, report, flagVerbose)
	}

	exitCode = exitCodeFor(report.Health.Score)
	return nil
}

// exitCodeFor maps a health score to the CLI exit-code convention:
// 0 for healthy (>= 80), 1 for degraded (>= 60), 2 otherwise.
func exitCodeFor(score float64) int {
	switch {
	case score >= 80:
		return 0
	case score >= 60:
		return 1
	}
	return 2
}

// scanOptions derives the aggregator limits from configuration.
func scanOptions(cfg *config.Config) health.Options {
	return health.Options{
		MaxFilesPerExt:    cfg.Scan.MaxFilesPerExt,
		MaxDisplayedTodos: cfg.Scan.MaxDisplayedTodos,
	}
}

// applyColorPrefs resolves the color setting from flags, config, and
// terminal detection, in that precedence order.
func applyColorPrefs(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}
