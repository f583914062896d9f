package reflow

import "strings"

// line is one physical output row: indentation, optional delimiter
// markers, and token content.
type line struct {
	indent     int // count of indent units
	tokens     []string
	openQuote  string
	closeQuote string
	// closingBrace ends a preceding interpolation segment ("}"),
	// openingBrace starts a following one ("${").
	closingBrace bool
	openingBrace bool
}

// renderWith serializes the line, optionally with extra candidate
// tokens appended, without mutating it. The middle section is the
// space-joined sequence [closing brace, tokens, opening brace] with
// unset parts skipped.
func (l *line) renderWith(unit string, candidates ...string) string {
	parts := make([]string, 0, len(l.tokens)+len(candidates)+2)
	if l.closingBrace {
		parts = append(parts, "}")
	}
	parts = append(parts, l.tokens...)
	parts = append(parts, candidates...)
	if l.openingBrace {
		parts = append(parts, "${")
	}
	return strings.Repeat(unit, l.indent) + l.openQuote + strings.Join(parts, " ") + l.closeQuote
}

func (l *line) render(unit string) string {
	return l.renderWith(unit)
}

// widthWith measures the serialized width the line would have if the
// candidate token were appended. The probe never mutates the line, so
// the packer can measure before committing.
func (l *line) widthWith(unit, candidate string) int {
	return len(l.renderWith(unit, candidate))
}

// document accumulates the output lines for one literal. A fresh
// document always holds one line so delimiter markers have a row to
// land on even when the literal has no tokens.
type document struct {
	unit  string
	lines []*line
}

func newDocument(unit string) *document {
	return &document{unit: unit, lines: []*line{{}}}
}

func (d *document) addLine(indent int) *line {
	l := &line{indent: indent}
	d.lines = append(d.lines, l)
	return l
}

// packGroup distributes one group's tokens across indented lines under
// the width and count limits. Packing is greedy: the width check
// probes the post-append length, so a line closes before the token
// that would overflow it. A token wider than the limit still gets a
// line of its own; tokens are never split. An empty group opens
// exactly one token-less indented line, preserving a blank row.
func (d *document) packGroup(g group, indent int, opts Options) {
	cur := d.addLine(indent)
	for _, tok := range g.tokens {
		full := opts.MaxTokensPerLine > 0 && len(cur.tokens) >= opts.MaxTokensPerLine
		wide := len(cur.tokens) > 0 && cur.widthWith(d.unit, tok) > opts.MaxWidth
		if full || wide {
			cur = d.addLine(indent)
		}
		cur.tokens = append(cur.tokens, tok)
	}
}

// attach decorates the first and last lines with the literal's own
// delimiters. The closing-quote line sits one indent unit shallower
// than the content so the delimiter lines up with the literal's
// opening column instead of the class content's column.
func (d *document) attach(openQuote, closeQuote string, closingBrace, openingBrace bool, contentIndent int) {
	if openQuote != "" {
		d.lines[0].openQuote = openQuote
	}
	if closingBrace {
		first := d.lines[0]
		if len(d.lines) > 1 {
			first = d.lines[1]
		}
		first.closingBrace = true
	}
	if openingBrace {
		d.addLine(contentIndent).openingBrace = true
	}
	if closeQuote != "" {
		indent := contentIndent - 1
		if indent < 0 {
			indent = 0
		}
		d.addLine(indent).closeQuote = closeQuote
	}
}

// String joins all lines with newlines.
func (d *document) String() string {
	rows := make([]string, len(d.lines))
	for i, l := range d.lines {
		rows[i] = l.render(d.unit)
	}
	return strings.Join(rows, "\n")
}
