// Package reflow reformats whitespace-separated utility class literals
// into a normalized single line or a width-bound multi-line layout.
//
// The engine is deterministic and stateless: every call tokenizes the
// literal's content, partitions the tokens by variant prefix, packs
// each group greedily under the width and count limits, and re-attaches
// the literal's own delimiters so the result can be spliced back into
// source text verbatim. Nothing is cached and nothing escapes a call;
// callers may reflow any number of literals concurrently.
package reflow

import "strings"

// LiteralKind distinguishes plain quoted strings from multi-segment
// literals that may span lines and carry interpolation segments.
type LiteralKind int

const (
	// KindPlain is a single-segment quoted string that cannot hold
	// newlines. Wrapping it requires changing it to a multi-segment
	// literal.
	KindPlain LiteralKind = iota
	// KindTemplate is a multi-segment literal (or an attribute value
	// that may span lines) whose delimiters survive wrapping.
	KindTemplate
)

// Boundary carries the literal-delimiter metadata the caller extracted
// around the class text.
type Boundary struct {
	Kind        LiteralKind
	StartColumn int    // 0-based column of the literal's opening delimiter
	OpenQuote   string // opening quote character, "" if absent
	CloseQuote  string // closing quote character, "" if absent
	// ClosingBrace means the class text directly follows an
	// interpolation segment, so the replacement must begin with the
	// segment's closing "}".
	ClosingBrace bool
	// OpeningBrace means the class text directly precedes an
	// interpolation segment, so the replacement must end with "${".
	OpeningBrace bool
	Raw          string // original raw text, delimiters included
}

// Result of one transform.
type Result struct {
	Text    string
	Changed bool
}

// Reflow re-serializes the literal's class tokens. With multi-line
// layout allowed the tokens are grouped and packed into a width-bound
// document; otherwise the content collapses onto a single line. The
// returned text includes the literal's delimiters and replaces the
// literal's raw text verbatim.
//
// A result whose document is exactly three lines (opening delimiter,
// one content line, closing delimiter) on a literal without
// interpolation markers is already canonical: the literal is left
// untouched even when the rendered text differs from the original.
func Reflow(content string, meta Boundary, opts Options) Result {
	opts = opts.withDefaults()

	if !opts.AllowMultiline {
		flat := &line{
			tokens:       SplitTokens(content),
			openQuote:    meta.OpenQuote,
			closeQuote:   meta.CloseQuote,
			closingBrace: meta.ClosingBrace,
			openingBrace: meta.OpeningBrace,
		}
		text := flat.render("")
		return Result{Text: text, Changed: text != meta.Raw}
	}

	unit := opts.IndentUnit
	contentIndent := meta.StartColumn/len(unit) + 1

	doc := newDocument(unit)
	if tokens := SplitTokens(content); len(tokens) > 0 {
		for _, g := range groupTokens(tokens, opts.GroupPolicy) {
			doc.packGroup(g, contentIndent, opts)
		}
	}

	openQuote, closeQuote := meta.OpenQuote, meta.CloseQuote
	if meta.Kind == KindPlain && openQuote != "" {
		// A plain string cannot hold newlines; the wrapped form uses a
		// multi-segment literal instead.
		openQuote, closeQuote = "`", "`"
	}
	doc.attach(openQuote, closeQuote, meta.ClosingBrace, meta.OpeningBrace, contentIndent)

	if len(doc.lines) == 3 && (meta.Kind == KindPlain || (!meta.ClosingBrace && !meta.OpeningBrace)) {
		return Result{Text: meta.Raw, Changed: false}
	}

	text := doc.String()
	return Result{Text: text, Changed: text != meta.Raw}
}

// NormalizeWhitespace collapses redundant whitespace in literal content
// without grouping or packing. With allowMultiline, each line is
// collapsed independently, leading and trailing blank lines are
// dropped, and newlines between the remaining lines are preserved.
// Otherwise all whitespace, line breaks included, collapses to single
// spaces on one line.
func NormalizeWhitespace(content string, allowMultiline bool) Result {
	if !allowMultiline {
		out := strings.Join(strings.Fields(content), " ")
		return Result{Text: out, Changed: out != content}
	}

	rows := strings.Split(content, "\n")
	for i, row := range rows {
		rows[i] = strings.Join(strings.Fields(row), " ")
	}
	start, end := 0, len(rows)
	for start < end && rows[start] == "" {
		start++
	}
	for end > start && rows[end-1] == "" {
		end--
	}
	out := strings.Join(rows[start:end], "\n")
	return Result{Text: out, Changed: out != content}
}
