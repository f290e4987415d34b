package pipeline

import "testing"

func TestExtractHTMLTable(t *testing.T) {
	html := `<table><tr><th>time</th><th>message</th></tr><tr><td>10:00</td><td>Connected</td></tr></table>`
	lines, err := extractHTML(html)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines=%q", lines)
	}
	if lines[1] != "10:00 | Connected" {
		t.Fatalf("row line=%q", lines[1])
	}
}

func TestExtractHTMLParagraphs(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head><body><p>first</p><p>second</p></body></html>`
	lines, err := extractHTML(html)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Fatalf("lines=%q", lines)
	}
}
