// Package health aggregates the analyzer results into one composite
// project health report with a score, letter grade, and badge set.
package health

import (
	"github.com/blackwell-systems/repowatch/internal/analyzer"
	"github.com/blackwell-systems/repowatch/internal/walker"
)

// Report is the aggregate result of one scan. It is constructed once
// per scan invocation and never mutated afterward. Field names and
// nesting are stable; CLI exit-code mapping and JSON consumers depend
// on them.
type Report struct {
	// Project is the basename of the scanned directory.
	Project string `json:"project"`

	// Languages lists the detected ecosystems, or ["unknown"].
	Languages []string `json:"languages"`

	// ScanTime is the wall-clock scan duration in seconds.
	ScanTime float64 `json:"scan_time"`

	// Health holds the composite score and letter grade.
	Health HealthScore `json:"health_score"`

	// Badges lists the achievement badges earned by this report.
	Badges []string `json:"badges"`

	// Readme is the documentation finding.
	Readme analyzer.ReadmeFinding `json:"readme"`

	// License is the license finding.
	License analyzer.LicenseFinding `json:"license"`

	// Todos holds the work items (first maxDisplayedTodos) and summary.
	Todos TodoReport `json:"todos"`

	// Security is the secret-scan finding.
	Security analyzer.SecurityFinding `json:"security"`

	// Dependencies holds per-ecosystem inventories; nil when the
	// ecosystem was not detected.
	Dependencies DependencyReport `json:"dependencies"`

	// Skipped lists files the scan could not read. Diagnostics only;
	// not part of the serialized report shape.
	Skipped []walker.SkippedFile `json:"-"`
}

// HealthScore is the composite score and its letter grade.
type HealthScore struct {
	// Score is 0-100, rounded to one decimal place.
	Score float64 `json:"score"`

	// Grade is A-F mapped from Score.
	Grade string `json:"grade"`
}

// TodoReport pairs the displayed work items with their summary.
type TodoReport struct {
	// Items holds the highest-priority items, capped for display.
	Items []analyzer.WorkItem `json:"items"`

	// Summary is derived over all items, not just the displayed ones.
	Summary analyzer.WorkItemSummary `json:"summary"`
}

// DependencyReport holds the per-ecosystem dependency inventories.
type DependencyReport struct {
	Python *analyzer.DependencyInventory `json:"python"`
	Nodejs *analyzer.DependencyInventory `json:"nodejs"`
}
