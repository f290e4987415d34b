package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"dedup/internal"
)

// ExportReportXLSX writes the per-line duplicate report: one row per input
// line across all processed files, with its verdict and the line number of
// the first occurrence it collided with.
func ExportReportXLSX(rows []internal.ReportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"file", "line_no", "status", "first_seen_line", "raw_line", "normalized_key"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.File)
		set(2, row.LineNo)
		set(3, string(row.Status))
		set(4, row.FirstSeenAt)
		set(5, row.RawLine)
		set(6, row.Key)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
