// Package config provides configuration loading and defaults for repowatch.
package config

// DefaultConfigDir is the default location for repowatch configuration.
const DefaultConfigDir = "~/.config/repowatch"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultScan holds the default scan limits.
var DefaultScan = Scan{
	MaxFilesPerExt:    50,
	MaxDisplayedTodos: 10,
}

// DefaultAI holds the default assistant settings. The API key is never
// stored in config; it is read from the ANTHROPIC_API_KEY environment
// variable.
var DefaultAI = AI{
	Model:     "claude-sonnet-4-20250514",
	MaxTokens: 1024,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
