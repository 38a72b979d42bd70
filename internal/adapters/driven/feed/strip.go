package feed

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for markup stripping.
var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	comments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|ul|ol|tr|table|blockquote|pre)[^>]*>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
)

// stripMarkup reduces feed item HTML to plain text: scripts, styles,
// and comments are dropped, block elements become separators, inline
// tags vanish, entities are decoded, and whitespace runs collapse to
// single spaces. Plain-text content passes through unchanged apart
// from whitespace collapsing.
func stripMarkup(content string) string {
	if content == "" {
		return ""
	}

	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = comments.ReplaceAllString(content, "")
	content = blockElements.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	return strings.Join(strings.Fields(content), " ")
}
