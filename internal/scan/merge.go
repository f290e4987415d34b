package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type MergeResult struct {
	OutputPath string
	Merged     int
}

// Merge concatenates every matching file under dir into a single timestamped
// file, each section wrapped in start/end markers naming its source. A file
// that cannot be read leaves an error marker in place of its content and the
// merge continues. The merged content is assembled in memory and written in
// one operation.
func Merge(dir string, filter Filter, outDir string) (MergeResult, error) {
	paths, err := Walk(dir, filter)
	if err != nil {
		return MergeResult{}, err
	}
	if len(paths) == 0 {
		return MergeResult{}, fmt.Errorf("no files matched in %s", dir)
	}

	var b strings.Builder
	merged := 0
	for _, path := range paths {
		name := filepath.Base(path)
		blob, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "merge: cannot read %s: %v\n", path, err)
			b.WriteString(fmt.Sprintf("\n# !!! Error reading file: %s - %v !!!\n", name, err))
			continue
		}
		b.WriteString(fmt.Sprintf("\n# --- Start of content from: %s ---\n", name))
		b.Write(blob)
		b.WriteString(fmt.Sprintf("\n# --- End of content from: %s ---\n", name))
		merged++
	}

	folder := filepath.Base(filepath.Clean(dir))
	stamp := time.Now().Format("20060102150405")
	outputPath := filepath.Join(outDir, fmt.Sprintf("%s_MERGED_%s.txt", folder, stamp))

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return MergeResult{}, err
	}
	if err := os.WriteFile(outputPath, []byte(b.String()), 0o644); err != nil {
		return MergeResult{}, err
	}
	return MergeResult{OutputPath: outputPath, Merged: merged}, nil
}
