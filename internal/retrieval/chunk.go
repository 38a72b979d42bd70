package retrieval

import (
	"strings"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// DefaultChunkMaxLen is the default passage length target in runes.
const DefaultChunkMaxLen = 420

// DefaultChunkOverlap is the default number of trailing runes carried
// into the next passage.
const DefaultChunkOverlap = 60

// Chunker splits document text into overlapping bounded-length
// passages along sentence boundaries.
type Chunker struct {
	maxLen    int
	overlap   int
	segmenter Segmenter
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxLen sets the passage length target in runes.
func WithMaxLen(maxLen int) Option {
	return func(c *Chunker) {
		if maxLen > 0 {
			c.maxLen = maxLen
		}
	}
}

// WithOverlap sets the overlap carried between passages in runes.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// WithSegmenter replaces the sentence boundary heuristic.
func WithSegmenter(s Segmenter) Option {
	return func(c *Chunker) {
		if s != nil {
			c.segmenter = s
		}
	}
}

// NewChunker creates a chunker with the given options.
func NewChunker(opts ...Option) *Chunker {
	c := &Chunker{
		maxLen:    DefaultChunkMaxLen,
		overlap:   DefaultChunkOverlap,
		segmenter: SentenceSegmenter{NewlineBreaks: true},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed the length target
	if c.overlap >= c.maxLen {
		c.overlap = c.maxLen / 4
	}

	return c
}

// Split chunks text into passage strings in left-to-right order.
//
// Whitespace runs are collapsed to single spaces, the text is cut into
// sentence segments, and segments accumulate into a buffer. When the
// next segment would push the buffer past maxLen the buffer is flushed
// as a passage and the next buffer starts with the trailing overlap
// runes of the flushed text plus the segment that triggered the flush.
//
// The length bound is a soft target: a single segment longer than
// maxLen is emitted whole rather than truncated. Empty input yields no
// passages.
func (c *Chunker) Split(text string) []string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return nil
	}

	var passages []string
	var buf []rune

	for _, seg := range c.segmenter.Segment(collapsed) {
		segRunes := []rune(seg)

		if len(buf) > 0 && len(buf)+1+len(segRunes) > c.maxLen {
			flushed := strings.TrimSpace(string(buf))
			if flushed != "" {
				passages = append(passages, flushed)
			}

			tail := []rune(flushed)
			if len(tail) > c.overlap {
				tail = tail[len(tail)-c.overlap:]
			}
			buf = buf[:0]
			buf = append(buf, tail...)
			buf = append(buf, ' ')
			buf = append(buf, segRunes...)
			continue
		}

		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, segRunes...)
	}

	if final := strings.TrimSpace(string(buf)); final != "" {
		passages = append(passages, final)
	}

	return passages
}

// BuildPassages chunks every document and assigns passage identifiers
// "<documentID>::<index>" with indexes 0, 1, 2, ... per document.
// Documents are processed in input order, which later becomes the
// scorer's tie-break order.
func BuildPassages(docs []domain.Document, chunker *Chunker) []domain.Passage {
	if chunker == nil {
		chunker = NewChunker()
	}

	var passages []domain.Passage
	for _, doc := range docs {
		for i, text := range chunker.Split(doc.Content) {
			passages = append(passages, domain.Passage{
				ID:         domain.PassageID(doc.ID, i),
				DocumentID: doc.ID,
				Title:      doc.Title,
				URL:        doc.URL,
				Text:       text,
				Index:      i,
			})
		}
	}

	return passages
}
