package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pipech/readable-tailwind/internal/lint"
	"github.com/pipech/readable-tailwind/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-check files as they change on disk",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := lint.NewRunner(cfg, logger)

	w, err := watch.New(logger,
		func(path string) bool {
			return cfg.WantsExtension(path) && !cfg.Excluded(path)
		},
		func(path string) {
			// Editors may fire a final event for a deleted file.
			if _, err := os.Stat(path); err != nil {
				return
			}
			report, err := runner.Run(context.Background(), []string{path})
			if err != nil {
				logger.Warn("check failed", zap.String("path", path), zap.Error(err))
				return
			}
			printDiagnostics(report)
			printSummary(report)
		})
	if err != nil {
		return err
	}
	defer w.Stop()

	for _, p := range targetPaths(args) {
		if err := w.Add(p); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w.Start(ctx)
	fmt.Println("watching for changes, ctrl-c to stop")
	<-ctx.Done()
	return nil
}
