// Package extract locates utility-class literals inside markup
// attributes and call-expression arguments using tree-sitter. It is
// the collaborator that feeds the reflow engine: each literal comes
// back with its content, raw text, byte spans, and delimiter metadata.
//
// Literals the extractor cannot classify (unquoted attributes,
// attribute values that are not plain strings or templates) are
// skipped; the engine is never handed malformed input.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

type sourceKind int

const (
	sourceHTML sourceKind = iota
	sourceScript
)

// Extractor locates class literals. It holds a single tree-sitter
// parser, so one Extractor serves one goroutine; create one per file
// or per worker.
type Extractor struct {
	parser     *sitter.Parser
	attributes map[string]bool
	callees    map[string]bool
}

// New creates an Extractor that recognizes the given attribute names
// (matched case-insensitively) and call-expression callee names.
func New(attributes, callees []string) *Extractor {
	attrs := make(map[string]bool, len(attributes))
	for _, a := range attributes {
		attrs[strings.ToLower(a)] = true
	}
	calls := make(map[string]bool, len(callees))
	for _, c := range callees {
		calls[c] = true
	}
	return &Extractor{
		parser:     sitter.NewParser(),
		attributes: attrs,
		callees:    calls,
	}
}

// Close releases the underlying parser.
func (e *Extractor) Close() {
	e.parser.Close()
}

// Supported reports whether the file type has a registered grammar.
func Supported(path string) bool {
	lang, _ := languageFor(path)
	return lang != nil
}

func languageFor(path string) (*sitter.Language, sourceKind) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return html.GetLanguage(), sourceHTML
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage(), sourceScript
	case ".ts":
		return typescript.GetLanguage(), sourceScript
	case ".tsx":
		return tsx.GetLanguage(), sourceScript
	default:
		return nil, sourceScript
	}
}

// Extract parses src and returns the class literals found, in source
// order.
func (e *Extractor) Extract(ctx context.Context, path string, src []byte) ([]Literal, error) {
	lang, kind := languageFor(path)
	if lang == nil {
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}

	e.parser.SetLanguage(lang)
	tree, err := e.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	if kind == sourceHTML {
		return e.extractHTML(tree.RootNode(), src), nil
	}
	return e.extractScript(tree.RootNode(), src), nil
}
