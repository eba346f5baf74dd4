package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level repowatch configuration.
type Config struct {
	Scan   Scan   `mapstructure:"scan"`
	AI     AI     `mapstructure:"ai"`
	Output Output `mapstructure:"output"`
}

// Scan defines the scan sampling and display limits.
type Scan struct {
	// MaxFilesPerExt caps the files inspected per extension. The cap
	// bounds scan cost on huge trees; results past it are a sample.
	MaxFilesPerExt int `mapstructure:"max_files_per_ext"`

	// MaxDisplayedTodos caps the work items embedded in a report.
	MaxDisplayedTodos int `mapstructure:"max_displayed_todos"`

}

// AI defines assistant settings.
type AI struct {
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file
// is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scan.max_files_per_ext", DefaultScan.MaxFilesPerExt)
	v.SetDefault("scan.max_displayed_todos", DefaultScan.MaxDisplayedTodos)
	v.SetDefault("ai.model", DefaultAI.Model)
	v.SetDefault("ai.max_tokens", DefaultAI.MaxTokens)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
