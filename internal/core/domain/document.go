package domain

import (
	"strconv"
	"time"
)

// Document represents a corpus document as supplied by the operator.
// It is the canonical unit of storage; retrieval never reads anything else.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title. May be empty.
	Title string

	// URL is the original location, when the document came from a
	// feed or file import. May be empty for hand-added documents.
	URL string

	// Content is the full text content. Retrieval re-derives
	// passages from this field on every query.
	Content string

	// AddedAt is when the document entered the corpus.
	AddedAt time.Time
}

// Passage is a scoring unit produced by chunking a document.
// Passages are never persisted; they are regenerated in full
// whenever the corpus changes.
type Passage struct {
	// ID is "<documentID>::<index>", unique across the corpus.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Title is copied from the parent document.
	Title string

	// URL is copied from the parent document.
	URL string

	// Text is the passage content after whitespace normalisation.
	Text string

	// Index is the ordinal position within the document, starting at 0.
	Index int
}

// PassageID builds the canonical passage identifier for a document
// and chunk index.
func PassageID(documentID string, index int) string {
	return documentID + "::" + strconv.Itoa(index)
}
