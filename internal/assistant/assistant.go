// Package assistant provides an optional text-completion collaborator
// backed by the Anthropic Messages API. Scanning never requires it;
// assistant failures must not affect scan results.
package assistant

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// apiKeyEnv is the environment variable holding the API key.
const apiKeyEnv = "ANTHROPIC_API_KEY"

// requestTimeout bounds a single blocking completion call. No retries.
const requestTimeout = 60 * time.Second

// systemPrompt frames every question with the assistant's role.
const systemPrompt = "You are a helpful developer assistant. Answer questions " +
	"about the user's project using the provided project context. Be concise " +
	"and practical."

// missingKeyMessage is returned instead of an error when no API key is
// configured, so the CLI stays usable without one.
const missingKeyMessage = `No API key configured, AI features are disabled.

To enable them:
  1. Get an API key from https://console.anthropic.com/
  2. Export it: export ` + apiKeyEnv + `=your_key_here`

// Assistant answers project questions via the Anthropic Messages API.
type Assistant struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// New creates an Assistant reading the API key from the environment.
// A missing key yields a usable Assistant whose Ask returns a help
// message instead of calling the API.
func New(model string, maxTokens int) *Assistant {
	a := &Assistant{model: model, maxTokens: maxTokens}
	if key := os.Getenv(apiKeyEnv); key != "" {
		client := anthropic.NewClient(option.WithAPIKey(key))
		a.client = &client
	}
	return a
}

// Enabled reports whether an API key was configured.
func (a *Assistant) Enabled() bool {
	return a.client != nil
}

// Ask sends the question with the project context and returns the
// model's text response. A single blocking request; no retry.
func (a *Assistant) Ask(ctx context.Context, question, projectContext string) (string, error) {
	if a.client == nil {
		return missingKeyMessage, nil
	}

	prompt := buildPrompt(question, projectContext)

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := a.client.Messages.New(reqCtx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// buildPrompt frames the question with the assistant role and the
// optional project context.
func buildPrompt(question, projectContext string) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	if projectContext != "" {
		fmt.Fprintf(&sb, "Project context:\n%s\n", projectContext)
	}
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
