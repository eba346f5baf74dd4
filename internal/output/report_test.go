package output

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/repowatch/internal/analyzer"
	"github.com/blackwell-systems/repowatch/internal/health"
	"github.com/blackwell-systems/repowatch/internal/walker"
)

func sampleReport() *health.Report {
	return &health.Report{
		Project:   "demo",
		Languages: []string{"python", "nodejs"},
		ScanTime:  0.05,
		Health:    health.HealthScore{Score: 78, Grade: "C"},
		Badges:    []string{health.BadgeCleanCode},
		Readme: analyzer.ReadmeFinding{
			Exists: true, File: "README.md", Score: 80,
			Missing: []string{"license"}, Words: 250,
		},
		License: analyzer.LicenseFinding{Exists: false},
		Todos: health.TodoReport{
			Items: []analyzer.WorkItem{
				{Kind: analyzer.KindDefect, Text: "crashes", File: "/p/a.py", Line: 3, Priority: 1},
			},
			Summary: analyzer.WorkItemSummary{
				Total: 1, ByKind: map[string]int{"BUG": 1}, Files: 1,
			},
		},
		Security: analyzer.SecurityFinding{
			Score:  70,
			Issues: []string{"Sensitive file: .env", "Potential password in a.py"},
			Total:  2,
		},
		Dependencies: health.DependencyReport{
			Python: &analyzer.DependencyInventory{Total: 2, Deps: []string{"flask", "requests"}, File: "requirements.txt"},
		},
	}
}

func TestRenderReport(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	var sb strings.Builder
	RenderReport(&sb, sampleReport(), false)
	out := sb.String()

	for _, want := range []string{
		"demo",
		"python, nodejs",
		"78.0% (Grade: C)",
		health.BadgeCleanCode,
		"README: README.md (score 80/100)",
		"Missing sections: license",
		"No LICENSE found",
		"Total: 1 across 1 files",
		"Sensitive file: .env",
		"Python Dependencies",
		"flask, requests",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n---\n%s", want, out)
		}
	}
}

func TestRenderReport_VerboseShowsSkipped(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	r := sampleReport()
	r.Skipped = []walker.SkippedFile{{Path: "/p/locked.py", Reason: "permission denied"}}

	var quiet, verbose strings.Builder
	RenderReport(&quiet, r, false)
	RenderReport(&verbose, r, true)

	if strings.Contains(quiet.String(), "locked.py") {
		t.Error("expected skipped files hidden without verbose")
	}
	if !strings.Contains(verbose.String(), "locked.py") {
		t.Error("expected skipped files shown with verbose")
	}
}

func TestRenderWorkItems(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	var sb strings.Builder
	RenderWorkItems(&sb, []analyzer.WorkItem{
		{Kind: analyzer.KindTodo, Text: "refactor this", File: "/p/x.go", Line: 9, Priority: 3},
	})
	out := sb.String()

	if !strings.Contains(out, "TODO") || !strings.Contains(out, "x.go:9") {
		t.Errorf("unexpected work-item table:\n%s", out)
	}
}
