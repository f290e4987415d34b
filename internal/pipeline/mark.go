package pipeline

import (
	"fmt"
	"strconv"
)

// RenderMarked builds the annotated companion output: every retained line
// prefixed with its zero-padded original line number and a UNQ/DUP tag.
// The pad width follows the total input line count so columns stay aligned.
func RenderMarked(marks []Mark, total int) []string {
	width := len(strconv.Itoa(total))
	if width < 1 {
		width = 1
	}

	out := make([]string, 0, len(marks))
	for _, m := range marks {
		if m.Dropped {
			continue
		}
		tag := "UNQ"
		if m.Duplicate {
			tag = "DUP"
		}
		out = append(out, fmt.Sprintf("[%0*d] %s %s", width, m.LineNo, tag, m.Raw))
	}
	return out
}
