// Package walker provides bounded, prune-aware enumeration of project files.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxPerExt is the per-extension cap on files returned by a walk.
// It bounds scan cost on very large trees; results past the cap are a
// sample, not an exhaustive inventory.
const DefaultMaxPerExt = 50

// prunedDirs are directory names that are never descended into:
// version control, dependency caches, and build artifacts.
var prunedDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"__pycache__":  true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	".venv":        true,
	".idea":        true,
}

// SkippedFile records a file or directory the walker could not read.
// Skips are diagnostics, never scan failures.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Walker enumerates files beneath a root directory, pruning version
// control and dependency-cache directories and capping the number of
// files returned per extension.
type Walker struct {
	root      string
	maxPerExt int

	// skipped accumulates unreadable entries across calls so callers
	// can surface them in verbose output.
	skipped []SkippedFile
}

// New creates a Walker for the given root with the default per-extension cap.
func New(root string) *Walker {
	return &Walker{root: root, maxPerExt: DefaultMaxPerExt}
}

// NewWithCap creates a Walker with a custom per-extension cap.
// A cap of zero or less falls back to the default.
func NewWithCap(root string, maxPerExt int) *Walker {
	if maxPerExt <= 0 {
		maxPerExt = DefaultMaxPerExt
	}
	return &Walker{root: root, maxPerExt: maxPerExt}
}

// Root returns the walker's root directory.
func (w *Walker) Root() string {
	return w.root
}

// Skipped returns the entries skipped so far due to read errors.
func (w *Walker) Skipped() []SkippedFile {
	return w.skipped
}

// FilesByExt walks the tree and returns paths whose extension is in
// exts, capped at maxPerExt files per extension. Extensions must
// include the leading dot. Order is deterministic (lexical walk order).
func (w *Walker) FilesByExt(exts []string, maxPerExt int) []string {
	if maxPerExt <= 0 {
		maxPerExt = w.maxPerExt
	}

	wanted := make(map[string]bool, len(exts))
	for _, e := range exts {
		wanted[strings.ToLower(e)] = true
	}

	counts := make(map[string]int, len(exts))
	var files []string

	w.walk(func(path string, d fs.DirEntry) {
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !wanted[ext] || counts[ext] >= maxPerExt {
			return
		}
		counts[ext]++
		files = append(files, path)
	})

	return files
}

// FilesByName walks the tree and returns paths whose basename exactly
// matches one of names. No per-name cap is applied; callers use this
// for small fixed lists of sensitive filenames.
func (w *Walker) FilesByName(names []string) []string {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var files []string
	w.walk(func(path string, d fs.DirEntry) {
		if wanted[d.Name()] {
			files = append(files, path)
		}
	})
	return files
}

// walk visits every regular file beneath the root in lexical order,
// pruning excluded directories. Unreadable directories are recorded as
// skipped and never abort the walk.
func (w *Walker) walk(visit func(path string, d fs.DirEntry)) {
	_ = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.skipped = append(w.skipped, SkippedFile{Path: path, Reason: err.Error()})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != w.root && prunedDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		visit(path, d)
		return nil
	})
}

// ReadFile reads a file found by the walker. A failed read is recorded
// as skipped and reported via ok=false; a single unreadable file must
// never fail a scan.
func (w *Walker) ReadFile(path string) (content string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.skipped = append(w.skipped, SkippedFile{Path: path, Reason: err.Error()})
		return "", false
	}
	return string(data), true
}
