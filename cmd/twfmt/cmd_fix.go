package main

import (
	"github.com/spf13/cobra"

	"github.com/pipech/readable-tailwind/internal/lint"
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Rewrite class literals into their canonical layout in place",
	RunE:  runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := lint.NewRunner(cfg, logger)
	report, err := runner.Fix(cmd.Context(), targetPaths(args))
	if err != nil {
		return err
	}

	printDiagnostics(report)
	printSummary(report)
	return nil
}
