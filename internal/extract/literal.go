package extract

import "github.com/pipech/readable-tailwind/internal/reflow"

// Literal is one utility-class literal located in a source file,
// together with the boundary metadata the reflow engine needs and the
// byte spans the fixer splices.
type Literal struct {
	// Content is the class text between the delimiters.
	Content string
	// Raw is the source text the reflow replacement covers, delimiters
	// included (quotes, and the "}"/"${" of adjacent interpolation
	// segments).
	Raw string

	// Start and End bound Raw in the file.
	Start int
	End   int
	// ContentStart and ContentEnd bound Content in the file.
	ContentStart int
	ContentEnd   int

	// Line and Column are the 0-based position of the literal's
	// opening delimiter. For a template segment that is the segment's
	// own leading "}" (or the backtick, for the first segment), so
	// diagnostics point at the segment.
	Line   int
	Column int
	// StartColumn is the 0-based column the layout engine indents
	// against. Segments of one template share the template's opening
	// column so the whole literal wraps to one depth.
	StartColumn int

	Kind       reflow.LiteralKind
	OpenQuote  string
	CloseQuote string
	// ClosingBrace marks a preceding interpolation segment,
	// OpeningBrace a following one.
	ClosingBrace bool
	OpeningBrace bool

	// WrapExpression is set for JSX attribute values given as bare
	// quoted strings: converting one to a template literal requires
	// wrapping the replacement in a {...} expression container.
	WrapExpression bool
}

// Boundary maps the literal onto the reflow engine's boundary metadata.
func (l Literal) Boundary() reflow.Boundary {
	return reflow.Boundary{
		Kind:         l.Kind,
		StartColumn:  l.StartColumn,
		OpenQuote:    l.OpenQuote,
		CloseQuote:   l.CloseQuote,
		ClosingBrace: l.ClosingBrace,
		OpeningBrace: l.OpeningBrace,
		Raw:          l.Raw,
	}
}
