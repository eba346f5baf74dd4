package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/repowatch/internal/analyzer"
	"github.com/blackwell-systems/repowatch/internal/health"
)

// RenderReport writes a styled human-readable report. Verbose adds the
// skipped-file diagnostics.
func RenderReport(w io.Writer, r *health.Report, verbose bool) {
	line := StyleMuted.Render(strings.Repeat("═", 60))

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, StyleHeader.Render("REPOWATCH SCAN RESULTS"))
	fmt.Fprintf(w, "%s %s\n", StyleLabel.Render("Project:"), r.Project)
	fmt.Fprintf(w, "%s %s\n", StyleLabel.Render("Languages:"), strings.Join(r.Languages, ", "))
	fmt.Fprintf(w, "%s %.2fs\n", StyleLabel.Render("Scan time:"), r.ScanTime)
	fmt.Fprintln(w, line)

	grade := GradeStyle(r.Health.Grade).Render(fmt.Sprintf("%.1f%% (Grade: %s)", r.Health.Score, r.Health.Grade))
	fmt.Fprintf(w, "\n%s %s\n", StyleBold.Render("Health Score:"), grade)
	fmt.Fprintf(w, "%s\n", ScoreBar(r.Health.Score, 20))

	if len(r.Badges) > 0 {
		fmt.Fprintf(w, "\n%s\n", Section("Badges"))
		for _, b := range r.Badges {
			fmt.Fprintf(w, "  %s\n", b)
		}
	}

	fmt.Fprintf(w, "\n%s\n", Section("Documentation"))
	if r.Readme.Exists {
		fmt.Fprintf(w, "  %s\n", StyleSuccess.Render(fmt.Sprintf("README: %s (score %d/100)", r.Readme.File, r.Readme.Score)))
		if len(r.Readme.Missing) > 0 {
			fmt.Fprintf(w, "  %s\n", StyleWarning.Render("Missing sections: "+strings.Join(r.Readme.Missing, ", ")))
		}
	} else {
		fmt.Fprintf(w, "  %s\n", StyleError.Render("No README found"))
	}
	if r.License.Exists {
		fmt.Fprintf(w, "  %s\n", StyleSuccess.Render("License: "+r.License.File))
	} else {
		fmt.Fprintf(w, "  %s\n", StyleWarning.Render("No LICENSE found"))
	}

	fmt.Fprintf(w, "\n%s\n", Section("Work Items"))
	RenderWorkItemSummary(w, r.Todos.Summary)

	fmt.Fprintf(w, "\n%s\n", Section("Security"))
	fmt.Fprintf(w, "  Score: %s\n", ScoreStyle(float64(r.Security.Score)).Render(fmt.Sprintf("%d/100", r.Security.Score)))
	for _, issue := range r.Security.Issues {
		fmt.Fprintf(w, "  %s\n", StyleWarning.Render(issue))
	}
	if r.Security.Total > len(r.Security.Issues) {
		fmt.Fprintf(w, "  %s\n", StyleMuted.Render(fmt.Sprintf("(%d more findings not shown)", r.Security.Total-len(r.Security.Issues))))
	}

	renderDeps(w, "Python", r.Dependencies.Python)
	renderDeps(w, "Node.js", r.Dependencies.Nodejs)

	if verbose && len(r.Skipped) > 0 {
		fmt.Fprintf(w, "\n%s\n", Section("Skipped Files"))
		for _, s := range r.Skipped {
			fmt.Fprintf(w, "  %s\n", StyleMuted.Render(s.Path+": "+s.Reason))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
}

// kindOrder fixes the display order for per-kind counts.
var kindOrder = []analyzer.ItemKind{
	analyzer.KindDefect,
	analyzer.KindFixMe,
	analyzer.KindTodo,
	analyzer.KindHack,
}

// kindEmoji decorates each work-item kind in human output.
var kindEmoji = map[analyzer.ItemKind]string{
	analyzer.KindDefect: "🐛",
	analyzer.KindFixMe:  "🔧",
	analyzer.KindTodo:   "📝",
	analyzer.KindHack:   "⚡",
}

// RenderWorkItemSummary writes per-kind work-item counts.
func RenderWorkItemSummary(w io.Writer, s analyzer.WorkItemSummary) {
	if s.Total == 0 {
		fmt.Fprintf(w, "  %s\n", StyleSuccess.Render("No work items found"))
		return
	}
	fmt.Fprintf(w, "  Total: %d across %d files\n", s.Total, s.Files)
	for _, k := range kindOrder {
		if n := s.ByKind[k.String()]; n > 0 {
			fmt.Fprintf(w, "  %s %s: %d\n", kindEmoji[k], k, n)
		}
	}
}

// RenderWorkItems writes a table of work items.
func RenderWorkItems(w io.Writer, items []analyzer.WorkItem) {
	if len(items) == 0 {
		return
	}
	tbl := NewTable("Kind", "Location", "Text")
	for _, item := range items {
		loc := fmt.Sprintf("%s:%d", filepath.Base(item.File), item.Line)
		text := item.Text
		if len(text) > 50 {
			text = text[:50] + "..."
		}
		tbl.AddRow(item.Kind.String(), loc, text)
	}
	fmt.Fprint(w, tbl.Render())
}

// renderDeps writes one ecosystem's dependency inventory, skipping
// absent or empty ones.
func renderDeps(w io.Writer, label string, inv *analyzer.DependencyInventory) {
	if inv == nil || inv.Total == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", Section(label+" Dependencies"))
	fmt.Fprintf(w, "  Total: %d (from %s)\n", inv.Total, inv.File)
	fmt.Fprintf(w, "  %s\n", StyleMuted.Render(strings.Join(inv.Deps, ", ")))
}
