package lint

import (
	"strings"
	"testing"
)

func TestApplyFixes(t *testing.T) {
	src := []byte("0123456789")
	diags := []Diagnostic{
		{Start: 2, End: 4, Replacement: "X"},
		{Start: 6, End: 8, Replacement: "YZW"},
	}
	got := string(ApplyFixes(src, diags))
	if got != "01X45YZW89" {
		t.Errorf("ApplyFixes = %q, want %q", got, "01X45YZW89")
	}
}

func TestApplyFixes_DropsOverlapping(t *testing.T) {
	src := []byte("0123456789")
	diags := []Diagnostic{
		{Start: 2, End: 6, Replacement: "X"},
		{Start: 4, End: 8, Replacement: "Y"}, // overlaps the later span
	}
	got := string(ApplyFixes(src, diags))
	if got != "0123Y89" {
		t.Errorf("ApplyFixes = %q, want %q", got, "0123Y89")
	}
}

func TestApplyFixes_Empty(t *testing.T) {
	src := []byte("abc")
	if got := string(ApplyFixes(src, nil)); got != "abc" {
		t.Errorf("ApplyFixes = %q, want unchanged", got)
	}
}

func TestRenderDiff(t *testing.T) {
	out := RenderDiff("a\nb\nc\n", "a\nB\nc\n")
	for _, want := range []string{"- b", "+ B", "  a"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}
