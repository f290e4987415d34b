package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which files inside a tree are processed. Ignore globs are
// checked first, against the base name; then the extension allow-list
// (empty list = every extension).
type Filter struct {
	IncludeExtensions []string
	IgnoreFiles       []string
}

func (f Filter) Match(name string) bool {
	base := filepath.Base(name)
	for _, pattern := range f.IgnoreFiles {
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return false
		}
	}
	if len(f.IncludeExtensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(base))
	for _, allowed := range f.IncludeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Walk returns the matching files under root in the lexical order of
// filepath.WalkDir, which makes traversal deterministic across runs.
// Unreadable directory entries are reported and skipped.
func Walk(root string, filter Filter) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("input path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	out := []string{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filter.Match(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
