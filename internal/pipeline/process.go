package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dedup/internal"
	"dedup/internal/config"
	"dedup/internal/scan"
)

// Processor runs the per-file flow: extract lines, dedup, write outputs.
// Files are independent; the seen-set never crosses file boundaries.
type Processor struct {
	cfg    config.Config
	norm   *Normalizer
	marked bool

	collectReport bool
	reportRows    []internal.ReportRow
}

func NewProcessor(cfg config.Config, norm *Normalizer, marked, collectReport bool) *Processor {
	return &Processor{cfg: cfg, norm: norm, marked: marked, collectReport: collectReport}
}

func (p *Processor) ProcessFile(path string) (internal.FileSummary, error) {
	source, lines, err := ReadLines(path)
	if err != nil {
		return internal.FileSummary{}, fmt.Errorf("read %s: %w", path, err)
	}

	res := Dedup(lines, p.norm)

	// Outputs are rendered fully in memory and written in one call, so a
	// failure never leaves a truncated file behind.
	outPath := p.outputPath(path, source, p.cfg.UniqueSuffix)
	if err := writeLines(outPath, res.Kept); err != nil {
		return internal.FileSummary{}, fmt.Errorf("write %s: %w", outPath, err)
	}

	summary := internal.FileSummary{
		Path:       path,
		OutputPath: outPath,
		Source:     source,
		Total:      res.Total,
		Kept:       len(res.Kept),
		Removed:    res.Removed,
		Dropped:    res.Dropped,
	}

	if p.marked {
		markedPath := p.outputPath(path, source, p.cfg.MarkedSuffix)
		if err := writeLines(markedPath, RenderMarked(res.Marks, res.Total)); err != nil {
			return internal.FileSummary{}, fmt.Errorf("write %s: %w", markedPath, err)
		}
		summary.MarkedPath = markedPath
	}

	if p.collectReport {
		p.appendReportRows(path, res)
	}

	return summary, nil
}

// ProcessTree walks root in deterministic lexical order and processes each
// matching file independently. A failing file is reported and skipped; the
// run continues with the rest.
func (p *Processor) ProcessTree(root string) ([]internal.FileSummary, error) {
	filter := scan.Filter{
		IncludeExtensions: p.cfg.IncludeExtensions,
		IgnoreFiles:       p.cfg.IgnoreFiles,
	}
	paths, err := scan.Walk(root, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]internal.FileSummary, 0, len(paths))
	for _, path := range paths {
		summary, err := p.ProcessFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			continue
		}
		summaries = append(summaries, summary)
		fmt.Printf("processed %s kept=%d removed=%d dropped=%d -> %s\n",
			summary.Path, summary.Kept, summary.Removed, summary.Dropped, summary.OutputPath)
	}
	return summaries, nil
}

func (p *Processor) ReportRows() []internal.ReportRow {
	return p.reportRows
}

func (p *Processor) appendReportRows(path string, res Result) {
	for _, m := range res.Marks {
		status := internal.StatusUnique
		switch {
		case m.Dropped:
			status = internal.StatusDropped
		case m.Duplicate:
			status = internal.StatusDuplicate
		}
		p.reportRows = append(p.reportRows, internal.ReportRow{
			File:        path,
			LineNo:      m.LineNo,
			Status:      status,
			FirstSeenAt: m.FirstSeen,
			RawLine:     m.Raw,
			Key:         m.Key,
		})
	}
}

func (p *Processor) outputPath(inputPath string, source internal.LineSource, suffix string) string {
	dir := filepath.Dir(inputPath)
	if p.cfg.OutputDir != "" {
		dir = p.cfg.OutputDir
	}
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if source != internal.SourceText {
		ext = ".txt"
	}
	return filepath.Join(dir, stem+suffix+ext)
}

func writeLines(path string, lines []string) error {
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
