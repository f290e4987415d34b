package pipeline

import "strings"

// Mark is the per-line verdict, used for the marked output and the XLSX
// report. Dropped covers lines removed outright (remove pattern or
// --ignore-empty-lines); those never appear in any text output.
type Mark struct {
	LineNo    int
	Raw       string
	Key       string
	Duplicate bool
	Dropped   bool
	FirstSeen int
}

type Result struct {
	Total   int
	Kept    []string
	Marks   []Mark
	Removed int
	Dropped int
}

// Dedup filters lines to first occurrences under the normalizer's
// equivalence. The seen-set is local to this call: callers get per-file
// scoping by calling once per file. Kept lines are the original text, in
// original order.
func Dedup(lines []string, n *Normalizer) Result {
	seen := make(map[string]int, len(lines))
	res := Result{
		Total: len(lines),
		Kept:  make([]string, 0, len(lines)),
		Marks: make([]Mark, 0, len(lines)),
	}

	for i, line := range lines {
		lineNo := i + 1

		if n.Removable(line) {
			res.Dropped++
			res.Marks = append(res.Marks, Mark{LineNo: lineNo, Raw: line, Dropped: true})
			continue
		}
		if n.opts.IgnoreEmptyLines && strings.TrimSpace(line) == "" {
			res.Dropped++
			res.Marks = append(res.Marks, Mark{LineNo: lineNo, Raw: line, Dropped: true})
			continue
		}

		key := n.Key(line)
		if n.opts.KeepEmptyDuplicates && strings.TrimSpace(key) == "" {
			// Blank lines bypass the seen-set entirely: always kept, never
			// suppressing each other.
			res.Kept = append(res.Kept, line)
			res.Marks = append(res.Marks, Mark{LineNo: lineNo, Raw: line, Key: key, FirstSeen: lineNo})
			continue
		}

		if first, ok := seen[key]; ok {
			res.Removed++
			res.Marks = append(res.Marks, Mark{LineNo: lineNo, Raw: line, Key: key, Duplicate: true, FirstSeen: first})
			continue
		}
		seen[key] = lineNo
		res.Kept = append(res.Kept, line)
		res.Marks = append(res.Marks, Mark{LineNo: lineNo, Raw: line, Key: key, FirstSeen: lineNo})
	}

	return res
}
