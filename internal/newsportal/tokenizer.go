package newsportal

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const minTermLength = 2

// Tokenizer splits raw search input into distinct terms.
// With CaseSensitive unset, terms differing only in case are deduplicated,
// the first spelling wins.
type Tokenizer struct {
	CaseSensitive bool
}

// Terms collapses whitespace, splits on it, drops duplicates keeping the first
// occurrence and drops terms shorter than two characters.
func (t Tokenizer) Terms(raw string) []string {
	terms := lo.UniqBy(strings.Fields(raw), func(term string) string {
		if t.CaseSensitive {
			return term
		}
		return strings.ToLower(term)
	})

	return lo.Filter(terms, func(term string, _ int) bool {
		return utf8.RuneCountInString(term) >= minTermLength
	})
}

// SearchTerms tokenizes raw with exact-match deduplication.
func SearchTerms(raw string) []string {
	return Tokenizer{CaseSensitive: true}.Terms(raw)
}
