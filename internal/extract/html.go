package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pipech/readable-tailwind/internal/reflow"
)

// extractHTML walks the document for class attributes. HTML attribute
// values may span lines inside their own quotes, so they carry the
// multi-segment kind and never need a literal-kind change to wrap.
func (e *Extractor) extractHTML(root *sitter.Node, src []byte) []Literal {
	var lits []Literal
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "attribute" {
			if lit, ok := e.htmlAttribute(n, src); ok {
				lits = append(lits, lit)
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return lits
}

func (e *Extractor) htmlAttribute(n *sitter.Node, src []byte) (Literal, bool) {
	var name string
	var value *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "attribute_name":
			name = c.Content(src)
		case "quoted_attribute_value":
			value = c
		}
	}
	// Unquoted or missing values are skipped; so are attributes the
	// configuration does not name.
	if value == nil || !e.attributes[strings.ToLower(name)] {
		return Literal{}, false
	}

	raw := value.Content(src)
	if len(raw) < 2 || (raw[0] != '"' && raw[0] != '\'') {
		return Literal{}, false
	}
	quote := string(raw[0])
	start, end := int(value.StartByte()), int(value.EndByte())

	return Literal{
		Content:      raw[1 : len(raw)-1],
		Raw:          raw,
		Start:        start,
		End:          end,
		ContentStart: start + 1,
		ContentEnd:   end - 1,
		Line:         int(value.StartPoint().Row),
		Column:       int(value.StartPoint().Column),
		StartColumn:  int(value.StartPoint().Column),
		Kind:         reflow.KindTemplate,
		OpenQuote:    quote,
		CloseQuote:   quote,
	}, true
}
