package retrieval

import "strings"

// Hangul syllable block (가..힣). Terms in this range are kept whole;
// the tokenizer does not attempt morphological analysis.
const (
	hangulFirst = '가'
	hangulLast  = '힣'
)

// Tokenize normalises raw text into index terms: lowercase, keep only
// lowercase ASCII letters, ASCII digits, and Hangul syllables, treat
// every other rune as a separator, and split on whitespace runs.
//
// The function is total and order-preserving. Empty input yields no
// terms. Re-tokenizing the space-joined output reproduces the same
// sequence.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r >= hangulFirst && r <= hangulLast:
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Fields(b.String())
}

// termSet returns the distinct terms of text as a membership set.
func termSet(text string) map[string]struct{} {
	terms := Tokenize(text)
	if len(terms) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}
