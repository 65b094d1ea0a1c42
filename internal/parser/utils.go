package parser

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeLabel lowercases a header label, trims it and collapses internal
// whitespace to single spaces. Accents are kept as-is; accented variants are
// listed explicitly in the synonym table.
func NormalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, "\n", " ")
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\t", " ")
	return whitespaceRe.ReplaceAllString(label, " ")
}

// Slug turns a normalized label into an identifier-safe fallback name.
func Slug(normalized string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(normalized), "_")
}

// ContainsAny reports whether text contains at least one of the keywords.
func ContainsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
