package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"dedup/internal/config"
	"dedup/internal/pipeline"
	"dedup/internal/scan"
)

// Service polls a directory and runs the dedup pipeline over files that are
// new or changed since the previous cycle. State is a mod-time map held in
// memory; nothing persists across runs.
type Service struct {
	cfg  config.Config
	proc *pipeline.Processor
	seen map[string]time.Time
}

func NewService(cfg config.Config, proc *pipeline.Processor) *Service {
	return &Service{cfg: cfg, proc: proc, seen: map[string]time.Time{}}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(); err != nil {
			fmt.Printf("watch cycle error: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle() error {
	filter := scan.Filter{
		IncludeExtensions: s.cfg.IncludeExtensions,
		IgnoreFiles:       s.cfg.IgnoreFiles,
	}
	paths, err := scan.Walk(s.cfg.WatchDir, filter)
	if err != nil {
		return err
	}

	processed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: stat %s: %v\n", path, err)
			continue
		}
		mod := info.ModTime()
		if last, ok := s.seen[path]; ok && !mod.After(last) {
			continue
		}

		summary, err := s.proc.ProcessFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			// Remember the mod time anyway so a broken file is not retried
			// every cycle.
			s.seen[path] = mod
			continue
		}
		s.seen[path] = mod
		processed++
		fmt.Printf("watch processed %s kept=%d removed=%d\n", summary.Path, summary.Kept, summary.Removed)
	}

	if processed > 0 {
		fmt.Printf("watch cycle done dir=%s processed=%d\n", s.cfg.WatchDir, processed)
	}
	return nil
}
