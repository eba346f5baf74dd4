// Package analyzer implements the individual health analyzers: project
// documentation, tagged work items, dependency inventory, and exposed
// secrets. Each analyzer reads the filesystem independently and returns
// a self-contained result; none depends on another's output.
package analyzer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blackwell-systems/repowatch/internal/walker"
)

// readmeCandidates are checked at the project root only, in order.
var readmeCandidates = []string{"README.md", "README.rst", "README.txt", "readme.md"}

// licenseCandidates are checked at the project root only, in order.
var licenseCandidates = []string{"LICENSE", "LICENSE.md", "license", "license.txt"}

// expectedSections are the README sections a healthy project documents.
var expectedSections = []string{"installation", "usage", "license"}

// headingRe matches Markdown heading lines and captures the title text.
var headingRe = regexp.MustCompile(`(?m)^#+\s+(.+)$`)

// ReadmeFinding is the result of the README check.
type ReadmeFinding struct {
	// Exists indicates whether a README file was found at the root.
	Exists bool `json:"exists"`

	// File is the matched filename (empty if absent).
	File string `json:"file,omitempty"`

	// Score is the documentation score, 0-100.
	Score int `json:"score"`

	// Missing lists the expected sections with no matching heading.
	Missing []string `json:"missing"`

	// Words is the whitespace-delimited word count of the README.
	Words int `json:"words"`
}

// LicenseFinding is the result of the license check.
type LicenseFinding struct {
	// Exists indicates whether a license file was found at the root.
	Exists bool `json:"exists"`

	// File is the matched filename (empty if absent).
	File string `json:"file,omitempty"`
}

// CheckReadme locates a README at the walker's root and scores it.
//
// Score breakdown (clamped to 100):
//   - Base for existing at all:       20 points
//   - Word count >= 200 / >= 100:     20 / 10 points
//   - Expected section coverage:      0-40 points (proportional)
//   - Markdown badge marker "[![":    20 points
//
// The formula deliberately weights documentation presence over rigor.
// A README that cannot be read scores the same as a missing one.
func CheckReadme(w *walker.Walker) ReadmeFinding {
	for _, name := range readmeCandidates {
		path := filepath.Join(w.Root(), name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		content, ok := w.ReadFile(path)
		if !ok {
			break
		}

		words := len(strings.Fields(content))

		var sections []string
		for _, m := range headingRe.FindAllStringSubmatch(content, -1) {
			sections = append(sections, m[1])
		}

		missing := missingSections(sections)

		score := 20
		switch {
		case words >= 200:
			score += 20
		case words >= 100:
			score += 10
		}
		score += 40 * (len(expectedSections) - len(missing)) / len(expectedSections)
		if strings.Contains(content, "[![") {
			score += 20
		}
		if score > 100 {
			score = 100
		}

		return ReadmeFinding{
			Exists:  true,
			File:    name,
			Score:   score,
			Missing: missing,
			Words:   words,
		}
	}

	return ReadmeFinding{
		Exists:  false,
		Score:   0,
		Missing: append([]string(nil), expectedSections...),
		Words:   0,
	}
}

// missingSections returns the expected sections that have no heading
// containing the section name, case-insensitively. Order follows
// expectedSections.
func missingSections(headings []string) []string {
	missing := []string{}
	for _, want := range expectedSections {
		found := false
		for _, h := range headings {
			if strings.Contains(strings.ToLower(h), want) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}

// CheckLicense looks for a license file at the walker's root.
// No scoring is applied; only existence and the matched name.
func CheckLicense(w *walker.Walker) LicenseFinding {
	for _, name := range licenseCandidates {
		if _, err := os.Stat(filepath.Join(w.Root(), name)); err == nil {
			return LicenseFinding{Exists: true, File: name}
		}
	}
	return LicenseFinding{Exists: false}
}
