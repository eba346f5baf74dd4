package health

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/repowatch/internal/analyzer"
	"github.com/blackwell-systems/repowatch/internal/walker"
)

// Options bounds the scan's per-extension sampling and display caps.
type Options struct {
	// MaxFilesPerExt caps files inspected per extension (0 = default).
	MaxFilesPerExt int

	// MaxDisplayedTodos caps the work items embedded in the report.
	MaxDisplayedTodos int
}

// DefaultOptions returns the standard scan limits.
func DefaultOptions() Options {
	return Options{
		MaxFilesPerExt:    walker.DefaultMaxPerExt,
		MaxDisplayedTodos: 10,
	}
}

// Badge names awarded when a report meets the corresponding threshold.
const (
	BadgeDocumentation = "📚 Documentation Master"
	BadgeCleanCode     = "✨ Clean Code Champion"
	BadgeSecurity      = "🔐 Security Champion"
	BadgeExcellence    = "🏆 Project Excellence"
)

// Scan runs every analyzer against root and aggregates the results.
// The root must exist and be a directory; anything else is a fatal
// configuration error and no report is produced. Analyzers run
// sequentially and each absorbs its own per-file failures, so a scan
// of any readable directory completes deterministically.
func Scan(root string, opts Options) (*Report, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q is not a directory", root)
	}

	if opts.MaxFilesPerExt <= 0 {
		opts.MaxFilesPerExt = walker.DefaultMaxPerExt
	}
	if opts.MaxDisplayedTodos <= 0 {
		opts.MaxDisplayedTodos = 10
	}

	start := time.Now()
	w := walker.NewWithCap(abs, opts.MaxFilesPerExt)

	readme := analyzer.CheckReadme(w)
	license := analyzer.CheckLicense(w)
	items := analyzer.FindWorkItems(w, opts.MaxFilesPerExt)
	summary := analyzer.Summarize(items)
	languages := analyzer.DetectEcosystems(w)
	security := analyzer.ScanSecrets(w)

	score := composeScore(readme.Score, license.Exists, summary.Total)

	displayed := items
	if len(displayed) > opts.MaxDisplayedTodos {
		displayed = displayed[:opts.MaxDisplayedTodos]
	}
	if displayed == nil {
		displayed = []analyzer.WorkItem{}
	}

	deps := DependencyReport{}
	for _, lang := range languages {
		switch lang {
		case "python":
			inv := analyzer.CheckPython(w)
			deps.Python = &inv
		case "nodejs":
			inv := analyzer.CheckNodejs(w)
			deps.Nodejs = &inv
		}
	}

	report := &Report{
		Project:   filepath.Base(abs),
		Languages: languages,
		ScanTime:  math.Round(time.Since(start).Seconds()*100) / 100,
		Health: HealthScore{
			Score: score,
			Grade: Grade(score),
		},
		Readme:       readme,
		License:      license,
		Todos:        TodoReport{Items: displayed, Summary: summary},
		Security:     security,
		Dependencies: deps,
		Skipped:      w.Skipped(),
	}
	report.Badges = awardBadges(report)

	return report, nil
}

// composeScore blends documentation, license presence, and work-item
// backlog into the composite health score.
//
// Breakdown:
//   - README score:       40% weight (0-40 points)
//   - License present:    20 points
//   - Work-item backlog:  40 points minus 2 per item, floored at 0
//
// The result is clamped to 100 and rounded to one decimal place.
func composeScore(readmeScore int, hasLicense bool, totalItems int) float64 {
	score := 0.4 * float64(readmeScore)
	if hasLicense {
		score += 20
	}

	penalty := 2 * totalItems
	if penalty > 40 {
		penalty = 40
	}
	score += float64(40 - penalty)

	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}

// Grade maps a health score to a letter grade. Thresholds are
// inclusive lower bounds checked highest first.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	}
	return "F"
}

// awardBadges evaluates every badge rule independently; any subset may
// apply.
func awardBadges(r *Report) []string {
	badges := []string{}
	if r.Readme.Exists && r.Readme.Score >= 80 {
		badges = append(badges, BadgeDocumentation)
	}
	if r.Todos.Summary.Total == 0 {
		badges = append(badges, BadgeCleanCode)
	}
	if r.Security.Score >= 95 {
		badges = append(badges, BadgeSecurity)
	}
	if r.Health.Score >= 90 {
		badges = append(badges, BadgeExcellence)
	}
	return badges
}
