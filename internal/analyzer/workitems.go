package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/blackwell-systems/repowatch/internal/walker"
)

// ItemKind classifies a tagged work-item comment. The numeric value is
// the item's priority rank: lower sorts first.
type ItemKind int

const (
	// KindDefect marks BUG comments: known broken behavior.
	KindDefect ItemKind = iota + 1
	// KindFixMe marks FIXME comments: wrong but working code.
	KindFixMe
	// KindTodo marks TODO comments: planned work.
	KindTodo
	// KindHack marks HACK comments: deliberate shortcuts.
	KindHack
)

// String returns the comment keyword for the kind.
func (k ItemKind) String() string {
	switch k {
	case KindDefect:
		return "BUG"
	case KindFixMe:
		return "FIXME"
	case KindTodo:
		return "TODO"
	case KindHack:
		return "HACK"
	}
	return "UNKNOWN"
}

// MarshalJSON renders the kind as its comment keyword.
func (k ItemKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

// Priority returns the fixed per-kind rank (1 = highest).
func (k ItemKind) Priority() int {
	return int(k)
}

// workItemExts are the source extensions scanned for work items.
var workItemExts = []string{".py", ".js", ".ts", ".java", ".go", ".rs", ".c", ".cpp", ".php", ".rb"}

// itemKinds lists all kinds in priority order.
var itemKinds = []ItemKind{KindDefect, KindFixMe, KindTodo, KindHack}

// itemPatterns maps each kind to its line-comment patterns. A line may
// match more than one pattern and contribute multiple items.
var itemPatterns = func() map[ItemKind][]*regexp.Regexp {
	m := make(map[ItemKind][]*regexp.Regexp, len(itemKinds))
	for _, k := range itemKinds {
		kw := k.String()
		m[k] = []*regexp.Regexp{
			regexp.MustCompile(`(?i)#\s*` + kw + `:?\s*(.+)`),
			regexp.MustCompile(`(?i)//\s*` + kw + `:?\s*(.+)`),
		}
	}
	return m
}()

// WorkItem is one tagged comment found in a source file.
type WorkItem struct {
	// Kind is the work-item classification, serialized as its keyword.
	Kind ItemKind `json:"type"`

	// Text is the comment text after the keyword.
	Text string `json:"text"`

	// File is the path of the file containing the item.
	File string `json:"file"`

	// Line is the 1-based line number of the match.
	Line int `json:"line"`

	// Priority is the fixed per-kind rank (1 = highest).
	Priority int `json:"priority"`
}

// WorkItemSummary is derived from a list of work items.
type WorkItemSummary struct {
	// Total is the number of items found.
	Total int `json:"total"`

	// ByKind counts items per comment keyword.
	ByKind map[string]int `json:"by_type"`

	// Files is the number of distinct files containing items.
	Files int `json:"files"`
}

// FindWorkItems scans source files under the walker's root for tagged
// comments (BUG, FIXME, TODO, HACK) and returns them sorted by
// (priority ascending, file path ascending). Unreadable files are
// skipped. Matching is case-insensitive.
func FindWorkItems(w *walker.Walker, maxPerExt int) []WorkItem {
	var items []WorkItem

	for _, path := range w.FilesByExt(workItemExts, maxPerExt) {
		content, ok := w.ReadFile(path)
		if !ok {
			continue
		}

		for lineNum, line := range strings.Split(content, "\n") {
			for _, kind := range itemKinds {
				for _, pat := range itemPatterns[kind] {
					for _, m := range pat.FindAllStringSubmatch(line, -1) {
						text := strings.TrimSpace(m[1])
						if text == "" {
							text = strings.TrimSpace(m[0])
						}
						if text == "" {
							continue
						}
						items = append(items, WorkItem{
							Kind:     kind,
							Text:     text,
							File:     path,
							Line:     lineNum + 1,
							Priority: kind.Priority(),
						})
					}
				}
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		return items[i].File < items[j].File
	})

	return items
}

// Summarize derives counts from a work-item list. Pure; no I/O.
func Summarize(items []WorkItem) WorkItemSummary {
	byKind := make(map[string]int)
	files := make(map[string]bool)
	for _, item := range items {
		byKind[item.Kind.String()]++
		files[item.File] = true
	}
	return WorkItemSummary{
		Total:  len(items),
		ByKind: byKind,
		Files:  len(files),
	}
}
