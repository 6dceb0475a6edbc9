package anonymizer

import (
	"regexp"
	"strings"
)

// ApplyRegexOverrides replaces every match of the supplied patterns with a
// minted token, pattern by pattern in the given order. Each pattern is
// evaluated against the current text, i.e. after earlier patterns' tokens
// have already been substituted in. Running this before entity tagging lets
// callers pre-empt identifiers the tagger would miss (emails, account
// numbers) and keeps the tagger from ever seeing the raw text, so an
// overlapping entity span can never undo a regex substitution.
func ApplyRegexOverrides(text string, patterns []*regexp.Regexp) (string, ColumnMapping) {
	mapping := make(ColumnMapping)
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			token := MintToken(match)
			mapping.Put(token, match)
			text = strings.ReplaceAll(text, match, token)
		}
	}
	return text, mapping
}
