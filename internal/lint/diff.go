package lint

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderDiff produces a line-oriented diff between original and fixed
// file contents for check output. The diff runs at line granularity to
// avoid newline boundary artifacts.
func RenderDiff(old, new string) string {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, row := range strings.Split(text, "\n") {
			sb.WriteString(prefix)
			sb.WriteString(row)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
