package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"dedup/internal"
)

func TestReadLinesPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("first\r\n\r\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	source, lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if source != internal.SourceText {
		t.Fatalf("source=%s", source)
	}
	want := []string{"first", "", "second"}
	if len(lines) != len(want) {
		t.Fatalf("lines=%q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.log")
	if err := os.WriteFile(path, []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := ReadLines(path); err == nil {
		t.Fatal("binary content accepted")
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, _, err := ReadLines(filepath.Join(t.TempDir(), "absent.log")); err == nil {
		t.Fatal("missing file accepted")
	}
}
