package health

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/repowatch/internal/analyzer"
	"github.com/blackwell-systems/repowatch/internal/walker"
)

// maxContextReadmeBytes bounds the README excerpt in the context string.
const maxContextReadmeBytes = 1000

// maxContextDeps bounds the dependency names listed per ecosystem.
const maxContextDeps = 5

// BuildContext derives a textual project summary from the analyzers'
// outputs for consumption by an external text-completion collaborator.
// The string is advisory only; the core never parses it back.
func BuildContext(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	w := walker.New(abs)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Project: %s\n", filepath.Base(abs))

	readme := analyzer.CheckReadme(w)
	if readme.Exists {
		if content, ok := w.ReadFile(filepath.Join(abs, readme.File)); ok {
			if len(content) > maxContextReadmeBytes {
				content = content[:maxContextReadmeBytes]
			}
			fmt.Fprintf(&sb, "README content:\n%s...\n", content)
		}
	}

	languages := analyzer.DetectEcosystems(w)
	fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(languages, ", "))

	for _, lang := range languages {
		switch lang {
		case "python":
			inv := analyzer.CheckPython(w)
			fmt.Fprintf(&sb, "Python dependencies: %s\n", strings.Join(firstN(inv.Deps, maxContextDeps), ", "))
		case "nodejs":
			inv := analyzer.CheckNodejs(w)
			fmt.Fprintf(&sb, "Node.js dependencies: %s\n", strings.Join(firstN(inv.Deps, maxContextDeps), ", "))
		}
	}

	return sb.String()
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
