// Package shell implements the interactive project shell. All session
// state is held explicitly in the Session struct and passed into
// command handlers; there are no process-wide globals.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/blackwell-systems/repowatch/internal/assistant"
	"github.com/blackwell-systems/repowatch/internal/health"
	"github.com/blackwell-systems/repowatch/internal/output"
)

// Session holds the state for one interactive shell run.
type Session struct {
	root      string
	opts      health.Options
	assistant *assistant.Assistant

	// projectContext is built once per session and reused for every
	// assistant question.
	projectContext string

	out io.Writer
}

// New creates a Session for the given project root.
func New(root string, opts health.Options, a *assistant.Assistant) *Session {
	return &Session{
		root:      root,
		opts:      opts,
		assistant: a,
		out:       os.Stdout,
	}
}

// Run starts the interactive loop. Ctrl-C clears the line, Ctrl-D or
// the exit command ends the session.
func (s *Session) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            output.StyleHeader.Render("repowatch> "),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("creating readline: %w", err)
	}
	defer rl.Close()

	s.projectContext = health.BuildContext(s.root)
	s.printWelcome()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		done, err := s.dispatch(ctx, line)
		if err != nil {
			fmt.Fprintf(s.out, "%s %v\n", output.StyleError.Render("Error:"), err)
		}
		if done {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}
}

// dispatch handles one line of input. Known commands run directly;
// anything else is forwarded to the assistant as a question about the
// project. Returns done=true when the session should end.
func (s *Session) dispatch(ctx context.Context, line string) (done bool, err error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit", "bye":
		return true, nil
	case "help", "?":
		s.printHelp()
		return false, nil
	case "scan":
		return false, s.cmdScan()
	case "todos":
		return false, s.cmdTodos()
	}
	return false, s.cmdAsk(ctx, line)
}

func (s *Session) cmdScan() error {
	report, err := health.Scan(s.root, s.opts)
	if err != nil {
		return err
	}
	output.RenderReport(s.out, report, false)
	return nil
}

func (s *Session) cmdTodos() error {
	report, err := health.Scan(s.root, s.opts)
	if err != nil {
		return err
	}
	output.RenderWorkItemSummary(s.out, report.Todos.Summary)
	output.RenderWorkItems(s.out, report.Todos.Items)
	return nil
}

func (s *Session) cmdAsk(ctx context.Context, question string) error {
	answer, err := s.assistant.Ask(ctx, question, s.projectContext)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s %s\n\n", output.StyleSuccess.Render("AI:"), answer)
	return nil
}

func (s *Session) printWelcome() {
	fmt.Fprintln(s.out, output.StyleHeader.Render("repowatch interactive shell"))
	fmt.Fprintln(s.out, "Ask questions about your project, or use a command.")
	fmt.Fprintln(s.out, "Type 'help' for commands, 'exit' to quit.")
	fmt.Fprintln(s.out)
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  scan    Run a full health scan")
	fmt.Fprintln(s.out, "  todos   List outstanding work items")
	fmt.Fprintln(s.out, "  help    Show this help")
	fmt.Fprintln(s.out, "  exit    Leave the shell")
	fmt.Fprintln(s.out, "Anything else is sent to the AI assistant.")
}
