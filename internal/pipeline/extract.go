package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhillyerd/enmime"
	pdf "github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"dedup/internal"
	"dedup/internal/util"
)

// ReadLines loads the ordered line sequence for one input file. Extraction
// depends on the extension; anything unrecognized is treated as plain text
// after a binary sniff. Plain text keeps empty lines (they take part in
// deduplication); row- and page-oriented sources yield compact lines only.
func ReadLines(path string) (internal.LineSource, []string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return internal.SourceText, nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		lines, err := extractXLSX(blob)
		return internal.SourceXLSX, lines, err
	case ".pdf":
		lines, err := extractPDF(blob)
		return internal.SourcePDF, lines, err
	case ".html", ".htm":
		lines, err := extractHTML(string(blob))
		return internal.SourceHTML, lines, err
	case ".eml":
		lines, err := extractEML(blob)
		return internal.SourceEML, lines, err
	default:
		det := DetectText(blob)
		if !det.IsText {
			return internal.SourceText, nil, fmt.Errorf("binary content (%s)", det.Reason)
		}
		return internal.SourceText, util.SplitLines(string(blob)), nil
	}
}

func extractXLSX(content []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := []string{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				cells = append(cells, util.NormalizeSpaces(c))
			}
			line := strings.Join(cells, " | ")
			if strings.TrimSpace(strings.ReplaceAll(line, "|", "")) == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return out, nil
}

func extractPDF(content []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	out := []string{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		out = append(out, util.CompactLines(text)...)
	}
	return out, nil
}

func extractHTML(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	doc.Find("script,style").Remove()

	out := []string{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, util.NormalizeSpaces(cell.Text()))
		})
		line := strings.Join(cells, " | ")
		if strings.TrimSpace(strings.ReplaceAll(line, "|", "")) == "" {
			return
		}
		out = append(out, line)
	})
	doc.Find("p,li,pre,h1,h2,h3,h4,h5,h6").Each(func(_ int, sel *goquery.Selection) {
		out = append(out, util.CompactLines(sel.Text())...)
	})
	if len(out) == 0 {
		out = util.CompactLines(doc.Text())
	}
	return out, nil
}

func extractEML(raw []byte) ([]string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if env.Text != "" {
		return util.SplitLines(env.Text), nil
	}
	if env.HTML != "" {
		return extractHTML(env.HTML)
	}
	return nil, fmt.Errorf("no text or html part")
}
