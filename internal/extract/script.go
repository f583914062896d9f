package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pipech/readable-tailwind/internal/reflow"
)

// extractScript walks JS/TS/JSX for class attributes and class-builder
// call expressions.
func (e *Extractor) extractScript(root *sitter.Node, src []byte) []Literal {
	var lits []Literal
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Type() {
		case "jsx_attribute":
			lits = append(lits, e.jsxAttribute(n, src)...)
		case "call_expression":
			lits = append(lits, e.callExpression(n, src)...)
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return lits
}

func (e *Extractor) jsxAttribute(n *sitter.Node, src []byte) []Literal {
	var name string
	var value *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "property_identifier":
			name = c.Content(src)
		case "string", "jsx_expression":
			value = c
		}
	}
	if value == nil || !e.attributes[strings.ToLower(name)] {
		return nil
	}

	switch value.Type() {
	case "string":
		// A bare quoted value: wrapping it later means introducing a
		// {`...`} expression container.
		if lit, ok := stringLiteral(value, src, true); ok {
			return []Literal{lit}
		}
	case "jsx_expression":
		inner := value.NamedChild(0)
		if inner == nil {
			return nil
		}
		switch inner.Type() {
		case "string":
			if lit, ok := stringLiteral(inner, src, false); ok {
				return []Literal{lit}
			}
		case "template_string":
			return templateSegments(inner, src)
		}
	}
	return nil
}

func (e *Extractor) callExpression(n *sitter.Node, src []byte) []Literal {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return nil
	}
	var name string
	switch fn.Type() {
	case "identifier":
		name = fn.Content(src)
	case "member_expression":
		if prop := fn.ChildByFieldName("property"); prop != nil {
			name = prop.Content(src)
		}
	}
	if !e.callees[name] {
		return nil
	}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	var lits []Literal
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		switch arg.Type() {
		case "string":
			if lit, ok := stringLiteral(arg, src, false); ok {
				lits = append(lits, lit)
			}
		case "template_string":
			lits = append(lits, templateSegments(arg, src)...)
		}
	}
	return lits
}

func stringLiteral(n *sitter.Node, src []byte, wrap bool) (Literal, bool) {
	raw := n.Content(src)
	if len(raw) < 2 || (raw[0] != '"' && raw[0] != '\'') {
		return Literal{}, false
	}
	quote := string(raw[0])
	start, end := int(n.StartByte()), int(n.EndByte())

	return Literal{
		Content:        raw[1 : len(raw)-1],
		Raw:            raw,
		Start:          start,
		End:            end,
		ContentStart:   start + 1,
		ContentEnd:     end - 1,
		Line:           int(n.StartPoint().Row),
		Column:         int(n.StartPoint().Column),
		StartColumn:    int(n.StartPoint().Column),
		Kind:           reflow.KindPlain,
		OpenQuote:      quote,
		CloseQuote:     quote,
		WrapExpression: wrap,
	}, true
}

// templateSegments splits a template literal into its text segments.
// Each segment between substitutions becomes its own literal carrying
// the adjacent "}" and "${" delimiters, so a reflow replacement of the
// segment's span reconstructs the surrounding interpolation intact.
func templateSegments(n *sitter.Node, src []byte) []Literal {
	start, end := int(n.StartByte()), int(n.EndByte())
	row, col := int(n.StartPoint().Row), int(n.StartPoint().Column)

	var subs []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == "template_substitution" {
			subs = append(subs, c)
		}
	}

	var lits []Literal
	cursor := start + 1 // past the opening backtick
	for i := 0; i <= len(subs); i++ {
		first := i == 0
		last := i == len(subs)

		segStart := cursor
		var segEnd int
		if last {
			segEnd = end - 1 // before the closing backtick
		} else {
			segEnd = int(subs[i].StartByte())
			cursor = int(subs[i].EndByte())
		}

		segRow, segCol := row, col
		if !first {
			// The segment opens at its leading "}", one column before
			// the enclosing substitution's end point.
			p := subs[i-1].EndPoint()
			segRow, segCol = int(p.Row), int(p.Column)-1
		}

		lit := Literal{
			Content:      string(src[segStart:segEnd]),
			ContentStart: segStart,
			ContentEnd:   segEnd,
			Line:         segRow,
			Column:       segCol,
			StartColumn:  col,
			Kind:         reflow.KindTemplate,
			ClosingBrace: !first,
			OpeningBrace: !last,
		}
		rawStart, rawEnd := segStart, segEnd
		if first {
			lit.OpenQuote = "`"
			rawStart = start
		} else {
			rawStart = segStart - 1 // include the segment's leading "}"
		}
		if last {
			lit.CloseQuote = "`"
			rawEnd = end
		} else {
			rawEnd = segEnd + 2 // include the trailing "${"
		}
		lit.Start, lit.End = rawStart, rawEnd
		lit.Raw = string(src[rawStart:rawEnd])
		lits = append(lits, lit)
	}
	return lits
}
