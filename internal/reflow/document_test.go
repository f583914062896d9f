package reflow

import "testing"

func TestLineRenderOrdering(t *testing.T) {
	l := &line{
		indent:       1,
		tokens:       []string{"b", "a"},
		openQuote:    "`",
		closingBrace: true,
		openingBrace: true,
	}
	// indent, opening quote, then closing brace / tokens / opening
	// brace joined by single spaces.
	want := "\t`} b a ${"
	if got := l.render("\t"); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestLineWidthWithDoesNotMutate(t *testing.T) {
	l := &line{indent: 1, tokens: []string{"flex"}}
	before := l.render("    ")
	if got, want := l.widthWith("    ", "gap-2"), len("    flex gap-2"); got != want {
		t.Errorf("widthWith = %d, want %d", got, want)
	}
	if after := l.render("    "); after != before {
		t.Errorf("widthWith mutated the line: %q -> %q", before, after)
	}
}

func TestDocumentSeedsOneLine(t *testing.T) {
	d := newDocument("    ")
	if len(d.lines) != 1 {
		t.Fatalf("expected 1 seeded line, got %d", len(d.lines))
	}
	if d.String() != "" {
		t.Errorf("empty document renders %q, want empty", d.String())
	}
}

func TestPackGroup_EmptyGroupKeepsBlankRow(t *testing.T) {
	d := newDocument("  ")
	d.packGroup(group{}, 2, DefaultOptions())
	if len(d.lines) != 2 {
		t.Fatalf("expected blank row appended, got %d lines", len(d.lines))
	}
	if got := d.lines[1].render(d.unit); got != "    " {
		t.Errorf("blank row renders %q, want indented empty row", got)
	}
}
