package reflow

// GroupPolicy controls how a change of variant prefix between two
// consecutive tokens separates the output.
type GroupPolicy string

const (
	// GroupNever keeps all tokens in a single group; only the width
	// and count limits can break lines.
	GroupNever GroupPolicy = "never"
	// GroupNewLine starts a new line at every variant-prefix change.
	GroupNewLine GroupPolicy = "newLine"
	// GroupEmptyLine inserts a blank line at every variant-prefix
	// change.
	GroupEmptyLine GroupPolicy = "emptyLine"
)

// Valid reports whether p is a recognized policy.
func (p GroupPolicy) Valid() bool {
	switch p {
	case GroupNever, GroupNewLine, GroupEmptyLine:
		return true
	}
	return false
}

// group is an ordered run of tokens kept together during packing. An
// empty group renders as a blank separator row.
type group struct {
	tokens []string
}

// groupTokens partitions tokens, in order, into groups according to the
// policy. A boundary occurs when a token's variant prefix differs from
// the prefix of the previously placed token; no boundary is ever
// inserted before the first token.
func groupTokens(tokens []string, policy GroupPolicy) []group {
	groups := []group{{}}
	var lastPrefix string
	placed := false
	for _, tok := range tokens {
		prefix := VariantPrefix(tok)
		if placed && prefix != lastPrefix {
			switch policy {
			case GroupNewLine:
				groups = append(groups, group{})
			case GroupEmptyLine:
				// The first of the two acts as the blank separator row.
				groups = append(groups, group{}, group{})
			}
		}
		last := len(groups) - 1
		groups[last].tokens = append(groups[last].tokens, tok)
		lastPrefix = prefix
		placed = true
	}
	return groups
}
