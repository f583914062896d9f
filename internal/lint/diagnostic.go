package lint

// Rule names reported with each diagnostic.
const (
	RuleMultiline  = "multiline"
	RuleWhitespace = "no-unnecessary-whitespace"
)

// Diagnostic messages. A literal that must wrap but is a plain quoted
// string needs its literal kind changed, which gets its own message.
const (
	msgNotCanonical = "class line-wrapping is not canonical"
	msgKindChange   = "class literal must become a template literal to wrap"
	msgWhitespace   = "unnecessary whitespace in class list"
)

// Diagnostic is one finding with its automatic fix.
type Diagnostic struct {
	Path    string
	Line    int // 1-based
	Column  int // 1-based
	Rule    string
	Message string

	// Start and End bound the byte span Replacement splices over.
	Start       int
	End         int
	Replacement string
}
