package pipeline

import (
	"bytes"
	"unicode/utf8"
)

type DetectResult struct {
	IsText bool
	Score  float64
	Reason string
}

const detectSampleSize = 4096

// DetectText scores a content sample on how much it looks like line-oriented
// text. A NUL byte is an immediate negative; otherwise UTF-8 validity and the
// printable ratio accumulate evidence against a fixed threshold.
func DetectText(blob []byte) DetectResult {
	if len(blob) == 0 {
		return DetectResult{IsText: true, Score: 1, Reason: "empty"}
	}

	sample := blob
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return DetectResult{IsText: false, Score: 0, Reason: "nul_byte"}
	}

	score := 0.0
	if utf8.Valid(sample) {
		score += 0.5
	}

	printable, total := 0, 0
	for _, r := range string(sample) {
		total++
		if r == '\n' || r == '\r' || r == '\t' || (r >= 0x20 && r != 0x7f) {
			printable++
		}
	}
	if total > 0 {
		ratio := float64(printable) / float64(total)
		if ratio >= 0.95 {
			score += 0.5
		} else if ratio >= 0.85 {
			score += 0.25
		}
	}
	if score > 1 {
		score = 1
	}

	isText := score >= 0.7
	reason := "score_low"
	if isText {
		reason = "score_ok"
	}
	return DetectResult{IsText: isText, Score: score, Reason: reason}
}
