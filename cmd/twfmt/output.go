package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/pipech/readable-tailwind/internal/lint"
)

var (
	stylePath  = lipgloss.NewStyle().Bold(true)
	styleRule  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

func printDiagnostics(report *lint.Report) {
	for _, d := range report.Diagnostics {
		fmt.Printf("%s:%d:%d  %s  %s\n",
			stylePath.Render(d.Path), d.Line, d.Column,
			styleRule.Render(d.Rule), d.Message)
	}
}

func printSummary(report *lint.Report) {
	switch {
	case report.FilesFixed > 0:
		fmt.Println(styleOK.Render(fmt.Sprintf(
			"fixed %d problem(s) in %d file(s)", len(report.Diagnostics), report.FilesFixed)))
	case report.HasFindings():
		fmt.Println(styleError.Render(fmt.Sprintf(
			"found %d problem(s) in %d file(s)", len(report.Diagnostics), report.Files)))
	default:
		fmt.Println(styleOK.Render(fmt.Sprintf("%d file(s) clean", report.Files)))
	}
}

// printDiffs shows each pending fix as a line diff against the file on
// disk.
func printDiffs(report *lint.Report) {
	byPath := make(map[string][]lint.Diagnostic)
	var order []string
	for _, d := range report.Diagnostics {
		if _, ok := byPath[d.Path]; !ok {
			order = append(order, d.Path)
		}
		byPath[d.Path] = append(byPath[d.Path], d)
	}
	for _, path := range order {
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fixed := lint.ApplyFixes(src, byPath[path])
		fmt.Printf("%s\n%s", stylePath.Render(path), lint.RenderDiff(string(src), string(fixed)))
	}
}
