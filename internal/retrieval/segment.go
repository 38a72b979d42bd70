package retrieval

import "strings"

// Segmenter splits text into sentence-like segments. The chunker and
// the extractive summariser both work on segments, so the boundary
// heuristic (and its locale assumptions) lives behind this interface
// and can be swapped without touching either.
type Segmenter interface {
	Segment(text string) []string
}

// SentenceSegmenter closes a segment after terminal punctuation
// ('.', '!', '?') and, when NewlineBreaks is set, after a line break.
// Runs of consecutive terminators ("...", "?!") stay in one segment.
// Korean polite endings ("~요.", "~다.") terminate with a period and
// are covered by the period rule.
type SentenceSegmenter struct {
	// NewlineBreaks treats '\n' as an additional boundary. The
	// chunker enables it; the summariser keeps the coarser
	// punctuation-only split.
	NewlineBreaks bool
}

var _ Segmenter = SentenceSegmenter{}

// Segment splits text at sentence boundaries. Segments are trimmed;
// empty segments are dropped. Text without any boundary comes back as
// a single segment.
func (s SentenceSegmenter) Segment(text string) []string {
	var segments []string
	var current strings.Builder

	flush := func() {
		if seg := strings.TrimSpace(current.String()); seg != "" {
			segments = append(segments, seg)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !s.isBoundary(runes[i]) {
			continue
		}
		// Absorb the rest of a terminator run so "..." or "?!"
		// never yields empty segments.
		for i+1 < len(runes) && s.isBoundary(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		flush()
	}
	flush()

	return segments
}

func (s SentenceSegmenter) isBoundary(r rune) bool {
	switch r {
	case '.', '!', '?':
		return true
	case '\n':
		return s.NewlineBreaks
	}
	return false
}
