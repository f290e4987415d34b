package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// End-to-end: mixed tree in, unique + marked outputs and an XLSX report out.
func TestSmokeTreeToReport(t *testing.T) {
	tmp := t.TempDir()
	writeFixture(t, tmp, "app.log",
		"[001] worker started\n"+
			"[002] worker started\n"+
			"[INFO] cache warm\n"+
			"[WARN] cache warm\n"+
			"shutdown\n")
	writeFixture(t, tmp, "nested/other.log", "worker started\n")

	cfg := testConfig()
	proc := NewProcessor(cfg, mustNormalizer(t, DefaultOptions()), true, true)
	summaries, err := proc.ProcessTree(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries=%+v", summaries)
	}

	got := readFile(t, filepath.Join(tmp, "app-UNIQUE.log"))
	want := "[001] worker started\n[INFO] cache warm\nshutdown\n"
	if got != want {
		t.Fatalf("unique output=%q", got)
	}

	marked := readFile(t, filepath.Join(tmp, "app-MARKED.log"))
	if !strings.Contains(marked, "[2] DUP [002] worker started") {
		t.Fatalf("marked output=%q", marked)
	}

	// The nested file keeps its line even though app.log saw the same text.
	nested := readFile(t, filepath.Join(tmp, "nested", "other-UNIQUE.log"))
	if nested != "worker started\n" {
		t.Fatalf("nested output=%q", nested)
	}

	reportPath := filepath.Join(tmp, "report.xlsx")
	if err := ExportReportXLSX(proc.ReportRows(), reportPath); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Fatal(err)
	}
}
