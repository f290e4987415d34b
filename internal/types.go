package internal

type LineSource string

const (
	SourceText LineSource = "text"
	SourceXLSX LineSource = "xlsx"
	SourcePDF  LineSource = "pdf"
	SourceHTML LineSource = "html"
	SourceEML  LineSource = "eml"
)

type LineStatus string

const (
	StatusUnique    LineStatus = "UNQ"
	StatusDuplicate LineStatus = "DUP"
	StatusDropped   LineStatus = "DROPPED"
)

// ReportRow is one line verdict destined for the XLSX duplicate report.
type ReportRow struct {
	File        string
	LineNo      int
	Status      LineStatus
	FirstSeenAt int
	RawLine     string
	Key         string
}

type FileSummary struct {
	Path       string
	OutputPath string
	MarkedPath string
	Source     LineSource
	Total      int
	Kept       int
	Removed    int
	Dropped    int
}
