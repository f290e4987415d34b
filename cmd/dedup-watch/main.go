package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dedup/internal/config"
	"dedup/internal/pipeline"
	"dedup/internal/watch"
)

func main() {
	cfg, err := config.Load()
	must(err)

	norm, err := pipeline.NewNormalizer(pipeline.DefaultOptions())
	must(err)
	proc := pipeline.NewProcessor(cfg, norm, false, false)

	svc := watch.NewService(cfg, proc)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	must(svc.Run(ctx))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
