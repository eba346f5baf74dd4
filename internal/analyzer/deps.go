package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blackwell-systems/repowatch/internal/walker"
)

// maxSampledDeps bounds the number of dependency names surfaced per
// ecosystem; the total count is unaffected.
const maxSampledDeps = 10

// ecosystemMarkers maps ecosystem names to the root-level files that
// indicate their presence. Detection order is fixed.
var ecosystemMarkers = []struct {
	name  string
	files []string
}{
	{"python", []string{"requirements.txt", "setup.py", "pyproject.toml"}},
	{"nodejs", []string{"package.json"}},
	{"go", []string{"go.mod"}},
	{"java", []string{"pom.xml", "build.gradle"}},
	{"rust", []string{"Cargo.toml"}},
}

// DependencyInventory lists declared dependencies for one ecosystem.
type DependencyInventory struct {
	// Total is the number of distinct declared dependencies.
	Total int `json:"total"`

	// Deps holds the first maxSampledDeps dependency names.
	Deps []string `json:"deps"`

	// File is the manifest the names were read from (empty if none).
	File string `json:"file,omitempty"`
}

// DetectEcosystems returns the ecosystems whose marker files exist at
// the walker's root, in fixed detection order. Returns ["unknown"]
// when nothing matches.
func DetectEcosystems(w *walker.Walker) []string {
	var found []string
	for _, eco := range ecosystemMarkers {
		for _, f := range eco.files {
			if _, err := os.Stat(filepath.Join(w.Root(), f)); err == nil {
				found = append(found, eco.name)
				break
			}
		}
	}
	if len(found) == 0 {
		return []string{"unknown"}
	}
	return found
}

// CheckPython parses requirements.txt at the root. Version specifiers
// (==, >=, <=) are stripped; names are deduplicated preserving file
// order. A missing or unreadable file yields the zero result.
func CheckPython(w *walker.Walker) DependencyInventory {
	path := filepath.Join(w.Root(), "requirements.txt")
	if _, err := os.Stat(path); err != nil {
		return DependencyInventory{Deps: []string{}}
	}

	content, ok := w.ReadFile(path)
	if !ok {
		return DependencyInventory{Deps: []string{}}
	}

	seen := make(map[string]bool)
	deps := []string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := stripVersionSpec(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		deps = append(deps, name)
	}

	return DependencyInventory{
		Total: len(deps),
		Deps:  sample(deps, maxSampledDeps),
		File:  "requirements.txt",
	}
}

// stripVersionSpec removes everything from the first version operator.
func stripVersionSpec(line string) string {
	for _, op := range []string{"==", ">=", "<="} {
		if idx := strings.Index(line, op); idx >= 0 {
			line = line[:idx]
		}
	}
	return strings.TrimSpace(line)
}

// CheckNodejs parses package.json at the root and unions the keys of
// its dependencies and devDependencies objects, dependencies first,
// each group sorted for deterministic output. Malformed JSON yields
// the zero result.
func CheckNodejs(w *walker.Walker) DependencyInventory {
	path := filepath.Join(w.Root(), "package.json")
	if _, err := os.Stat(path); err != nil {
		return DependencyInventory{Deps: []string{}}
	}

	content, ok := w.ReadFile(path)
	if !ok {
		return DependencyInventory{Deps: []string{}}
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return DependencyInventory{Deps: []string{}}
	}

	seen := make(map[string]bool)
	deps := []string{}
	for _, group := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		names := make([]string, 0, len(group))
		for name := range group {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			deps = append(deps, name)
		}
	}

	return DependencyInventory{
		Total: len(deps),
		Deps:  sample(deps, maxSampledDeps),
		File:  "package.json",
	}
}

// sample returns at most n leading elements, never nil.
func sample(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
