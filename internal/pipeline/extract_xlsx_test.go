package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"dedup/internal"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func TestReadLinesXLSX(t *testing.T) {
	blob := mkXLSX([][]any{
		{"time", "message"},
		{"10:00", "Connected"},
		{"10:05", "Connected"},
	})
	path := filepath.Join(t.TempDir(), "log.xlsx")
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatal(err)
	}

	source, lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if source != internal.SourceXLSX {
		t.Fatalf("source=%s", source)
	}
	if len(lines) != 3 {
		t.Fatalf("lines=%q", lines)
	}
	if lines[1] != "10:00 | Connected" {
		t.Fatalf("row line=%q", lines[1])
	}
}
