package reflow

import "strings"

// SplitTokens splits literal content into class tokens on whitespace.
// Empty content yields no tokens.
func SplitTokens(content string) []string {
	return strings.Fields(content)
}

// VariantPrefix returns a token's variant prefix: the leading run of
// characters up to and including the first colon. A token without a
// colon has no prefix and returns "". Tokens sharing a prefix belong
// to the same variant family for grouping purposes.
func VariantPrefix(token string) string {
	if i := strings.Index(token, ":"); i >= 0 {
		return token[:i+1]
	}
	return ""
}
