package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reLineNumberPrefix = regexp.MustCompile(`^\s*\[?\d+\]?[.:)]?\s+`)
	reTagPrefix        = regexp.MustCompile(`^\s*\[[^\]]*\]\s*`)
)

// Options controls how lines are reduced to comparison keys. Built once per
// run and immutable afterwards.
type Options struct {
	CaseSensitive       bool
	StripLineNumbers    bool
	StripTags           bool
	KeepEmptyDuplicates bool
	IgnoreEmptyLines    bool
	IgnorePatterns      []string
	RemovePatterns      []string
}

func DefaultOptions() Options {
	return Options{StripLineNumbers: true, StripTags: true}
}

type Normalizer struct {
	opts   Options
	ignore []*regexp.Regexp
	remove []*regexp.Regexp
}

// NewNormalizer compiles all configured patterns. A malformed pattern fails
// here, before any file is touched.
func NewNormalizer(opts Options) (*Normalizer, error) {
	n := &Normalizer{opts: opts}
	for _, pattern := range opts.IgnorePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		n.ignore = append(n.ignore, re)
	}
	for _, pattern := range opts.RemovePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid remove pattern %q: %w", pattern, err)
		}
		n.remove = append(n.remove, re)
	}
	return n, nil
}

// Key reduces a line to its comparison form: strip the leading numeric index,
// strip the leading bracketed tag, apply the ignore patterns in declared
// order (each on the previous result), then fold case unless the run is
// case-sensitive. The raw line is untouched; output files always carry the
// original text.
func (n *Normalizer) Key(line string) string {
	key := line
	if n.opts.StripLineNumbers {
		key = reLineNumberPrefix.ReplaceAllString(key, "")
	}
	if n.opts.StripTags {
		key = reTagPrefix.ReplaceAllString(key, "")
	}
	for _, re := range n.ignore {
		key = re.ReplaceAllString(key, "")
	}
	if !n.opts.CaseSensitive {
		key = strings.ToLower(key)
	}
	return key
}

// Removable reports whether a line matches one of the remove patterns and is
// dropped outright, before deduplication.
func (n *Normalizer) Removable(line string) bool {
	for _, re := range n.remove {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
