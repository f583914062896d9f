package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipech/readable-tailwind/internal/lint"
)

var showDiff bool

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report class literals whose layout or whitespace is not canonical",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&showDiff, "diff", false, "print the pending fix for each file as a diff")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := lint.NewRunner(cfg, logger)
	report, err := runner.Run(cmd.Context(), targetPaths(args))
	if err != nil {
		return err
	}

	printDiagnostics(report)
	if showDiff {
		printDiffs(report)
	}
	printSummary(report)

	if report.HasFindings() {
		return fmt.Errorf("found %d problem(s)", len(report.Diagnostics))
	}
	return nil
}
