package reflow

// Options configure one reflow invocation. They are read once per call
// and never mutated.
type Options struct {
	// MaxWidth is the maximum serialized line width, indentation and
	// delimiters included. A line may exceed it only when a single
	// token alone already does.
	MaxWidth int
	// MaxTokensPerLine caps the tokens on one line; 0 means unbounded.
	MaxTokensPerLine int
	// IndentUnit is one level of indentation, for example four spaces
	// or a single tab.
	IndentUnit string
	// GroupPolicy controls separation at variant-prefix changes.
	GroupPolicy GroupPolicy
	// AllowMultiline permits multi-line layout. When false the content
	// collapses onto a single line instead.
	AllowMultiline bool
}

// DefaultOptions returns the options used when nothing is configured:
// 80 columns, unbounded tokens per line, four-space indentation, blank
// lines between variant groups, multi-line layout allowed.
func DefaultOptions() Options {
	return Options{
		MaxWidth:       80,
		IndentUnit:     "    ",
		GroupPolicy:    GroupEmptyLine,
		AllowMultiline: true,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = 80
	}
	if o.IndentUnit == "" {
		o.IndentUnit = "    "
	}
	if !o.GroupPolicy.Valid() {
		o.GroupPolicy = GroupEmptyLine
	}
	return o
}
