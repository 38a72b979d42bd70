package domain

// ScoredPassage pairs a passage with its relevance score for one query.
// Results are ordered by descending score; equal scores keep the
// original passage order (document order, then chunk index).
type ScoredPassage struct {
	// PassageID identifies the scored passage.
	PassageID string

	// Score is the TF-IDF relevance weight. Zero means no query
	// term occurs in the passage.
	Score float64

	// DocumentID links back to the source document.
	DocumentID string

	// Title is copied from the passage for display.
	Title string

	// URL is copied from the passage for display.
	URL string

	// Index is the passage's ordinal position within its document.
	Index int
}

// ContextItem is the unit handed to a generation backend. The JSON
// field names are part of the wire contract with the answer endpoint
// and must not change.
type ContextItem struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// AnswerSource records how an answer was produced.
type AnswerSource string

const (
	// AnswerGenerated means a generation backend produced the text.
	AnswerGenerated AnswerSource = "generated"

	// AnswerExtractive means the text is key sentences lifted from
	// the best-matching passage. Used when no backend is configured
	// or the backend call failed.
	AnswerExtractive AnswerSource = "extractive"

	// AnswerNone means no passage matched the question at all.
	AnswerNone AnswerSource = "none"
)

// AskOptions tunes a single question without reconfiguring the service.
type AskOptions struct {
	// TopK overrides how many ranked passages are offered to the
	// budgeter. Zero keeps the service default.
	TopK int

	// LocalOnly skips the generation backend and answers
	// extractively even when a backend is configured.
	LocalOnly bool
}

// Answer is the outcome of asking a question against the corpus.
// The Source field makes the degraded paths first-class results
// rather than errors.
type Answer struct {
	// Text is the answer body. Empty when Source is AnswerNone.
	Text string

	// Source records which path produced Text.
	Source AnswerSource

	// Contexts are the passages that were offered to the backend,
	// in rank order, after budgeting.
	Contexts []ContextItem
}

// GenerationResult is what a generation backend returns: the answer
// text and the context items it actually accepted under its own size
// ceiling.
type GenerationResult struct {
	Answer string        `json:"answer"`
	Used   []ContextItem `json:"used"`
}
