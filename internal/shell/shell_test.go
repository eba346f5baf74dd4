package shell

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/repowatch/internal/assistant"
	"github.com/blackwell-systems/repowatch/internal/health"
)

func newTestSession(t *testing.T) (*Session, *strings.Builder) {
	t.Helper()
	t.Setenv("ANTHROPIC_API_KEY", "")

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("// TODO: ship it\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	s := New(root, health.DefaultOptions(), assistant.New("test-model", 64))
	s.out = &sb
	return s, &sb
}

func TestDispatch_Exit(t *testing.T) {
	s, _ := newTestSession(t)
	for _, cmd := range []string{"exit", "quit", "BYE"} {
		done, err := s.dispatch(context.Background(), cmd)
		if err != nil {
			t.Errorf("%s: unexpected error %v", cmd, err)
		}
		if !done {
			t.Errorf("%s: expected session end", cmd)
		}
	}
}

func TestDispatch_Help(t *testing.T) {
	s, out := newTestSession(t)
	done, err := s.dispatch(context.Background(), "help")
	if err != nil || done {
		t.Fatalf("help: done=%v err=%v", done, err)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Error("expected help text")
	}
}

func TestDispatch_Scan(t *testing.T) {
	s, out := newTestSession(t)
	done, err := s.dispatch(context.Background(), "scan")
	if err != nil || done {
		t.Fatalf("scan: done=%v err=%v", done, err)
	}
	if !strings.Contains(out.String(), "Health Score:") {
		t.Errorf("expected scan output, got:\n%s", out.String())
	}
}

func TestDispatch_Todos(t *testing.T) {
	s, out := newTestSession(t)
	done, err := s.dispatch(context.Background(), "todos")
	if err != nil || done {
		t.Fatalf("todos: done=%v err=%v", done, err)
	}
	if !strings.Contains(out.String(), "TODO") {
		t.Errorf("expected todo listing, got:\n%s", out.String())
	}
}

func TestDispatch_FreeTextGoesToAssistant(t *testing.T) {
	s, out := newTestSession(t)
	// Without an API key the assistant answers with its help message
	// rather than calling the network.
	done, err := s.dispatch(context.Background(), "what does this project do?")
	if err != nil || done {
		t.Fatalf("free text: done=%v err=%v", done, err)
	}
	if !strings.Contains(out.String(), "AI:") {
		t.Errorf("expected assistant response, got:\n%s", out.String())
	}
}
