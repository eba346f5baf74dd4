package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repowatch/internal/assistant"
	"github.com/blackwell-systems/repowatch/internal/config"
	"github.com/blackwell-systems/repowatch/internal/shell"
)

var shellFlagPath string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `Shell drops into an interactive prompt with scan and todos commands
plus free-form questions answered by the AI assistant.`,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().StringVarP(&shellFlagPath, "path", "p", ".", "Project path for the session")

	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPrefs(cfg)

	a := assistant.New(cfg.AI.Model, cfg.AI.MaxTokens)
	session := shell.New(shellFlagPath, scanOptions(cfg), a)
	return session.Run(cmd.Context())
}
