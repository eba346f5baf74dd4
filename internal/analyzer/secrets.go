package analyzer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blackwell-systems/repowatch/internal/walker"
)

const (
	// maxDisplayedIssues caps the issue list surfaced to callers. The
	// security score is computed over the untruncated count.
	maxDisplayedIssues = 5

	// maxSecretFilesPerExt bounds the inline-pattern scan per extension.
	maxSecretFilesPerExt = 20

	// issuePenalty is the score deduction per finding.
	issuePenalty = 15
)

// sensitiveNames are basenames that should never ship in a repository.
var sensitiveNames = []string{".env", ".env.local", "id_rsa", "id_dsa", "config.json", "secrets.json"}

// secretScanExts are the extensions checked for inline credentials.
var secretScanExts = []string{".py", ".js", ".ts", ".java", ".yaml", ".yml"}

// secretPatterns match credential-like assignments with a quoted value
// of minimum length. The first capture group is the value.
var secretPatterns = []struct {
	re   *regexp.Regexp
	desc string
}{
	{regexp.MustCompile(`(?i)password\s*[=:]\s*['"](.{8,})['"]`), "password"},
	{regexp.MustCompile(`(?i)api[_-]?key\s*[=:]\s*['"](.{16,})['"]`), "API key"},
	{regexp.MustCompile(`(?i)secret[_-]?key\s*[=:]\s*['"](.{16,})['"]`), "secret"},
}

// placeholderValues are matched values that are documentation
// placeholders, not real secrets. Comparison is lower-cased and exact.
var placeholderValues = map[string]bool{
	"password":     true,
	"your_api_key": true,
	"example":      true,
	"test":         true,
}

// SecurityFinding is the result of the secret scan.
type SecurityFinding struct {
	// Score is max(0, 100 - 15 per finding), over the untruncated count.
	Score int `json:"score"`

	// Issues holds the first maxDisplayedIssues finding descriptions,
	// sensitive-filename findings first.
	Issues []string `json:"issues"`

	// Total is the untruncated finding count the score was derived
	// from. It can exceed len(Issues).
	Total int `json:"total"`
}

// ScanSecrets runs both security checks under the walker's root: the
// sensitive-filename scan and the inline credential-pattern scan.
// Both are best-effort; unreadable files are skipped.
func ScanSecrets(w *walker.Walker) SecurityFinding {
	issues := []string{}

	for _, path := range w.FilesByName(sensitiveNames) {
		issues = append(issues, fmt.Sprintf("Sensitive file: %s", filepath.Base(path)))
	}

	for _, path := range w.FilesByExt(secretScanExts, maxSecretFilesPerExt) {
		content, ok := w.ReadFile(path)
		if !ok {
			continue
		}
		for _, sp := range secretPatterns {
			for _, m := range sp.re.FindAllStringSubmatch(content, -1) {
				if placeholderValues[strings.ToLower(m[1])] {
					continue
				}
				issues = append(issues, fmt.Sprintf("Potential %s in %s", sp.desc, filepath.Base(path)))
			}
		}
	}

	total := len(issues)
	score := 100 - total*issuePenalty
	if score < 0 {
		score = 0
	}

	displayed := issues
	if len(displayed) > maxDisplayedIssues {
		displayed = displayed[:maxDisplayedIssues]
	}

	return SecurityFinding{
		Score:  score,
		Issues: displayed,
		Total:  total,
	}
}
