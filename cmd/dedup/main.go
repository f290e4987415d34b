package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dedup/internal"
	"dedup/internal/config"
	"dedup/internal/pipeline"
	"dedup/internal/scan"
	"dedup/internal/watch"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input file or directory")
		marked := fs.Bool("marked", false, "also write the -MARKED companion file")
		report := fs.String("report", "", "write an XLSX duplicate report to this path")
		var includeExt, ignoreFiles stringList
		fs.Var(&includeExt, "include-ext", "extension to include when scanning a directory (repeatable)")
		fs.Var(&ignoreFiles, "ignore-file", "filename glob to skip when scanning a directory (repeatable)")
		df := registerDedupFlags(fs)
		_ = fs.Parse(os.Args[2:])

		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		if len(includeExt) > 0 {
			cfg.IncludeExtensions = config.NormalizeExtensions(includeExt)
		}
		if len(ignoreFiles) > 0 {
			cfg.IgnoreFiles = append(cfg.IgnoreFiles, ignoreFiles...)
		}

		norm, err := pipeline.NewNormalizer(df.options())
		must(err)
		proc := pipeline.NewProcessor(cfg, norm, *marked, *report != "")

		info, err := os.Stat(*input)
		must(err)

		var summaries []internal.FileSummary
		if info.IsDir() {
			summaries, err = proc.ProcessTree(*input)
			must(err)
		} else {
			summary, err := proc.ProcessFile(*input)
			must(err)
			fmt.Printf("processed %s kept=%d removed=%d dropped=%d -> %s\n",
				summary.Path, summary.Kept, summary.Removed, summary.Dropped, summary.OutputPath)
			summaries = []internal.FileSummary{summary}
		}

		printAggregate(summaries)
		if *report != "" {
			must(pipeline.ExportReportXLSX(proc.ReportRows(), *report))
			fmt.Printf("report written to %s\n", *report)
		}
	case "merge":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "directory to merge")
		out := fs.String("out", ".", "directory for the merged file")
		marked := fs.Bool("marked", false, "also write the -MARKED companion file")
		var includeExt, ignoreFiles stringList
		fs.Var(&includeExt, "include-ext", "extension to include (repeatable)")
		fs.Var(&ignoreFiles, "ignore-file", "filename glob to skip (repeatable)")
		df := registerDedupFlags(fs)
		_ = fs.Parse(os.Args[2:])

		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		if len(includeExt) > 0 {
			cfg.IncludeExtensions = config.NormalizeExtensions(includeExt)
		}
		if len(ignoreFiles) > 0 {
			cfg.IgnoreFiles = append(cfg.IgnoreFiles, ignoreFiles...)
		}

		norm, err := pipeline.NewNormalizer(df.options())
		must(err)

		filter := scan.Filter{IncludeExtensions: cfg.IncludeExtensions, IgnoreFiles: cfg.IgnoreFiles}
		merged, err := scan.Merge(*input, filter, *out)
		must(err)
		fmt.Printf("merged %d files into %s\n", merged.Merged, merged.OutputPath)

		proc := pipeline.NewProcessor(cfg, norm, *marked, false)
		summary, err := proc.ProcessFile(merged.OutputPath)
		must(err)
		fmt.Printf("processed %s kept=%d removed=%d dropped=%d -> %s\n",
			summary.Path, summary.Kept, summary.Removed, summary.Dropped, summary.OutputPath)
	case "watch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "directory to watch (default from env)")
		marked := fs.Bool("marked", false, "also write the -MARKED companion file")
		df := registerDedupFlags(fs)
		_ = fs.Parse(os.Args[2:])

		if strings.TrimSpace(*input) != "" {
			cfg.WatchDir = *input
		}
		norm, err := pipeline.NewNormalizer(df.options())
		must(err)
		proc := pipeline.NewProcessor(cfg, norm, *marked, false)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		must(watch.NewService(cfg, proc).Run(ctx))
	default:
		usage()
		os.Exit(1)
	}
}

type dedupFlags struct {
	caseSensitive     bool
	disableLineNumber bool
	disableTags       bool
	keepEmptyDup      bool
	ignoreEmpty       bool
	ignorePatterns    stringList
	removePatterns    stringList
}

func registerDedupFlags(fs *flag.FlagSet) *dedupFlags {
	f := &dedupFlags{}
	fs.BoolVar(&f.caseSensitive, "case-sensitive", false, "comparison keys retain original case")
	fs.BoolVar(&f.disableLineNumber, "disable-line-number", false, "do not strip leading numeric-index prefixes before comparison")
	fs.BoolVar(&f.disableTags, "disable-tags", false, "do not strip leading bracketed-tag prefixes before comparison")
	fs.BoolVar(&f.keepEmptyDup, "keep-empty-duplicates", false, "never deduplicate blank lines")
	fs.BoolVar(&f.ignoreEmpty, "ignore-empty-lines", false, "drop blank lines from all outputs")
	fs.Var(&f.ignorePatterns, "ignore-pattern", "regex stripped from each line before comparison (repeatable, applied in order)")
	fs.Var(&f.removePatterns, "remove-line", "regex; matching lines are removed outright (repeatable)")
	return f
}

func (f *dedupFlags) options() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.CaseSensitive = f.caseSensitive
	opts.StripLineNumbers = !f.disableLineNumber
	opts.StripTags = !f.disableTags
	opts.KeepEmptyDuplicates = f.keepEmptyDup
	opts.IgnoreEmptyLines = f.ignoreEmpty
	opts.IgnorePatterns = f.ignorePatterns
	opts.RemovePatterns = f.removePatterns
	return opts
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func printAggregate(summaries []internal.FileSummary) {
	kept, removed, dropped := 0, 0, 0
	for _, s := range summaries {
		kept += s.Kept
		removed += s.Removed
		dropped += s.Dropped
	}
	fmt.Printf("done files=%d kept=%d removed=%d dropped=%d\n", len(summaries), kept, removed, dropped)
}

func usage() {
	fmt.Println("usage: dedup <command>")
	fmt.Println("commands:")
	fmt.Println("  run   --input=FILE|DIR [--case-sensitive] [--disable-line-number] [--disable-tags]")
	fmt.Println("        [--keep-empty-duplicates] [--ignore-empty-lines] [--ignore-pattern=RE ...]")
	fmt.Println("        [--remove-line=RE ...] [--marked] [--report=out.xlsx] [--include-ext=.log ...]")
	fmt.Println("  merge --input=DIR [--out=DIR] [dedup flags]")
	fmt.Println("  watch [--input=DIR] [dedup flags]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
