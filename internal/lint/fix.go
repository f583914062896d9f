package lint

import (
	"bytes"
	"sort"
)

// ApplyFixes splices each diagnostic's replacement into src and
// returns the fixed contents. Fixes apply last-to-first so earlier
// byte offsets stay valid; a fix overlapping one already applied is
// dropped.
func ApplyFixes(src []byte, diags []Diagnostic) []byte {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	out := src
	applied := len(out)
	for _, d := range sorted {
		if d.Start < 0 || d.End < d.Start || d.End > applied {
			continue
		}
		var buf bytes.Buffer
		buf.Grow(len(out) - (d.End - d.Start) + len(d.Replacement))
		buf.Write(out[:d.Start])
		buf.WriteString(d.Replacement)
		buf.Write(out[d.End:])
		out = buf.Bytes()
		applied = d.Start
	}
	return out
}
