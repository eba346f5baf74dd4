package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repowatch/internal/config"
	"github.com/blackwell-systems/repowatch/internal/health"
	"github.com/blackwell-systems/repowatch/internal/output"
)

// maxListedTodos caps the items printed by the todos command.
const maxListedTodos = 5

var todosFlagPath string

var todosCmd = &cobra.Command{
	Use:   "todos",
	Short: "List outstanding work items",
	Long: `Todos scans source files for tagged work-item comments (BUG, FIXME,
TODO, HACK) and lists the highest-priority ones.`,
	RunE: runTodos,
}

func init() {
	todosCmd.Flags().StringVarP(&todosFlagPath, "path", "p", ".", "Project path to scan")

	rootCmd.AddCommand(todosCmd)
}

func runTodos(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPrefs(cfg)

	report, err := health.Scan(todosFlagPath, scanOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Println(output.Section("Work Items"))
	output.RenderWorkItemSummary(os.Stdout, report.Todos.Summary)

	items := report.Todos.Items
	if len(items) > maxListedTodos {
		items = items[:maxListedTodos]
	}
	if len(items) > 0 {
		fmt.Println()
		output.RenderWorkItems(os.Stdout, items)
	}
	return nil
}
