package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repowatch/internal/assistant"
	"github.com/blackwell-systems/repowatch/internal/config"
	"github.com/blackwell-systems/repowatch/internal/health"
	"github.com/blackwell-systems/repowatch/internal/output"
)

var aiFlagPath string

var aiCmd = &cobra.Command{
	Use:   "ai <question>",
	Short: "Ask the AI assistant about a project",
	Long: `Ai sends a question to the Claude API together with a short summary
of the project (name, README excerpt, languages, dependencies).

Requires the ANTHROPIC_API_KEY environment variable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAI,
}

func init() {
	aiCmd.Flags().StringVarP(&aiFlagPath, "path", "p", ".", "Project path used to build context")

	rootCmd.AddCommand(aiCmd)
}

func runAI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPrefs(cfg)

	question := strings.Join(args, " ")
	a := assistant.New(cfg.AI.Model, cfg.AI.MaxTokens)

	projectContext := health.BuildContext(aiFlagPath)
	answer, err := a.Ask(cmd.Context(), question, projectContext)
	if err != nil {
		return fmt.Errorf("asking assistant: %w", err)
	}

	fmt.Println(output.StyleBold.Render("AI:"), answer)
	return nil
}
