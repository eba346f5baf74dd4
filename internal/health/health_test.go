package health

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// maxReadme builds a README scoring the full 100 points.
func maxReadme() string {
	var sb strings.Builder
	sb.WriteString("# project\n\n[![ci](badge)](link)\n\n## Installation\n\n")
	for i := 0; i < 110; i++ {
		sb.WriteString("word word ")
	}
	sb.WriteString("\n## Usage\n\nrun\n\n## License\n\nMIT\n")
	return sb.String()
}

func TestScan_EmptyDirectory(t *testing.T) {
	root := t.TempDir()

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	// 0.4*0 readme + 0 license + 40 work-item credit.
	if r.Health.Score != 40 {
		t.Errorf("expected score 40, got %v", r.Health.Score)
	}
	if r.Health.Grade != "F" {
		t.Errorf("expected grade F, got %s", r.Health.Grade)
	}
	if r.Readme.Exists || r.License.Exists {
		t.Error("expected no README or license")
	}
	if r.Todos.Summary.Total != 0 {
		t.Errorf("expected no work items, got %d", r.Todos.Summary.Total)
	}
	if len(r.Languages) != 1 || r.Languages[0] != "unknown" {
		t.Errorf("expected unknown ecosystem, got %v", r.Languages)
	}
	if r.Security.Score != 100 {
		t.Errorf("expected security 100, got %d", r.Security.Score)
	}
	// Zero work items and a clean secret scan still earn their badges.
	wantBadges := []string{BadgeCleanCode, BadgeSecurity}
	if len(r.Badges) != len(wantBadges) {
		t.Fatalf("expected badges %v, got %v", wantBadges, r.Badges)
	}
	for i := range wantBadges {
		if r.Badges[i] != wantBadges[i] {
			t.Errorf("badge %d: expected %s, got %s", i, wantBadges[i], r.Badges[i])
		}
	}
	if r.Dependencies.Python != nil || r.Dependencies.Nodejs != nil {
		t.Error("expected nil dependency inventories")
	}
}

func TestScan_PerfectProject(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "README.md", maxReadme())
	writeProjectFile(t, root, "LICENSE", "MIT")
	writeProjectFile(t, root, "go.mod", "module example.com/project\n")
	writeProjectFile(t, root, "main.go", "package main\n")

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	// 0.4*100 + 20 + 40 = 100.
	if r.Health.Score != 100 {
		t.Errorf("expected score 100, got %v", r.Health.Score)
	}
	if r.Health.Grade != "A" {
		t.Errorf("expected grade A, got %s", r.Health.Grade)
	}

	want := map[string]bool{
		BadgeDocumentation: true,
		BadgeCleanCode:     true,
		BadgeSecurity:      true,
		BadgeExcellence:    true,
	}
	if len(r.Badges) != len(want) {
		t.Fatalf("expected all 4 badges, got %v", r.Badges)
	}
	for _, b := range r.Badges {
		if !want[b] {
			t.Errorf("unexpected badge %s", b)
		}
	}

	if len(r.Languages) != 1 || r.Languages[0] != "go" {
		t.Errorf("expected go ecosystem, got %v", r.Languages)
	}
}

func TestScan_WorkItemPenalty(t *testing.T) {
	root := t.TempDir()
	// 3 items cost 6 points of work-item credit.
	writeProjectFile(t, root, "a.go", "// TODO: one\n// TODO: two\n// FIXME: three\n")

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	// 0 readme + 0 license + (40 - 6) = 34.
	if r.Health.Score != 34 {
		t.Errorf("expected score 34, got %v", r.Health.Score)
	}
	if r.Todos.Summary.Total != 3 {
		t.Errorf("expected 3 items, got %d", r.Todos.Summary.Total)
	}
}

func TestScan_WorkItemPenaltyFloorsAtZero(t *testing.T) {
	root := t.TempDir()
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("// TODO: item\n")
	}
	writeProjectFile(t, root, "busy.go", sb.String())

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	// 30 items exceed the 40-point credit; contribution bottoms at 0.
	if r.Health.Score != 0 {
		t.Errorf("expected score 0, got %v", r.Health.Score)
	}
	if r.Health.Grade != "F" {
		t.Errorf("expected grade F, got %s", r.Health.Grade)
	}
}

func TestScan_FractionalScoreRounding(t *testing.T) {
	root := t.TempDir()
	// One section: readme scores 33; 0.4*33 = 13.2.
	writeProjectFile(t, root, "README.md", "# p\n## Installation\nx")

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if r.Health.Score != 53.2 {
		t.Errorf("expected 53.2, got %v", r.Health.Score)
	}
}

func TestScan_DisplayedTodosCapped(t *testing.T) {
	root := t.TempDir()
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("// TODO: item\n")
	}
	writeProjectFile(t, root, "busy.go", sb.String())

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(r.Todos.Items) != 10 {
		t.Errorf("expected 10 displayed items, got %d", len(r.Todos.Items))
	}
	if r.Todos.Summary.Total != 15 {
		t.Errorf("expected summary over all 15 items, got %d", r.Todos.Summary.Total)
	}
}

func TestScan_DependencyInventories(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "requirements.txt", "flask\nrequests\n")
	writeProjectFile(t, root, "package.json", `{"dependencies":{"express":"1.0.0"}}`)

	r, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if r.Dependencies.Python == nil || r.Dependencies.Python.Total != 2 {
		t.Errorf("unexpected python inventory: %+v", r.Dependencies.Python)
	}
	if r.Dependencies.Nodejs == nil || r.Dependencies.Nodejs.Total != 1 {
		t.Errorf("unexpected nodejs inventory: %+v", r.Dependencies.Nodejs)
	}
	if len(r.Dependencies.Nodejs.Deps) != 1 || r.Dependencies.Nodejs.Deps[0] != "express" {
		t.Errorf("expected express sample, got %v", r.Dependencies.Nodejs.Deps)
	}
}

func TestScan_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "README.md", maxReadme())
	writeProjectFile(t, root, "app.py", "# TODO: refactor\npassword = \"hunter2hunter2\"\n")

	first, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	second, err := Scan(root, DefaultOptions())
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}

	// Identical up to scan_time.
	first.ScanTime = 0
	second.ScanTime = 0
	if first.Health != second.Health {
		t.Errorf("health differs: %+v vs %+v", first.Health, second.Health)
	}
	if len(first.Todos.Items) != len(second.Todos.Items) {
		t.Fatalf("item counts differ")
	}
	for i := range first.Todos.Items {
		if first.Todos.Items[i] != second.Todos.Items[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, first.Todos.Items[i], second.Todos.Items[i])
		}
	}
	if first.Security.Total != second.Security.Total {
		t.Errorf("security totals differ: %d vs %d", first.Security.Total, second.Security.Total)
	}
}

func TestScan_MissingRootIsFatal(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScan_FileRootIsFatal(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "plain.txt", "x")

	_, err := Scan(filepath.Join(root, "plain.txt"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestGrade_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		grade string
	}{
		{100, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"},
		{59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.grade {
			t.Errorf("Grade(%v): expected %s, got %s", tt.score, tt.grade, got)
		}
	}
}
