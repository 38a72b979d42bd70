package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ansa-cli/internal/logger"
	"github.com/custodia-labs/ansa-cli/internal/retrieval"
)

const (
	// DefaultTopK is the number of top-ranked passages offered as context.
	DefaultTopK = 6

	// DefaultExtractSentences is the number of key sentences an
	// extractive answer is built from.
	DefaultExtractSentences = 3
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService answers questions over the corpus. Each question rebuilds
// the passage index from the document store, ranks passages against the
// question, selects contexts within budget, and produces either a
// generated or an extractive answer.
//
// Rebuilding per question keeps the index trivially consistent with the
// store; the corpus is small by design, so the rebuild is cheap.
type AskService struct {
	docStore  driven.DocumentStore
	generator driven.GenerationService
	chunker   *retrieval.Chunker
	budget    retrieval.ContextBudget
	topK      int
}

// NewAskService creates a new ask service.
// The generator parameter is optional (can be nil); answers are then
// always extractive.
func NewAskService(docStore driven.DocumentStore, generator driven.GenerationService) *AskService {
	return &AskService{
		docStore:  docStore,
		generator: generator,
		chunker:   retrieval.NewChunker(),
		budget:    retrieval.DefaultContextBudget(),
		topK:      DefaultTopK,
	}
}

// SetChunker overrides the chunker used when indexing documents.
func (s *AskService) SetChunker(c *retrieval.Chunker) {
	if c != nil {
		s.chunker = c
	}
}

// SetBudget overrides the context selection budget.
func (s *AskService) SetBudget(b retrieval.ContextBudget) {
	s.budget = b
}

// SetTopK overrides how many top-ranked passages are offered as context.
func (s *AskService) SetTopK(k int) {
	if k > 0 {
		s.topK = k
	}
}

// Ask answers a question from the corpus.
//
// A question nothing in the corpus matches yields an answer with source
// "none". Generation failures are not errors: the service falls back to
// an extractive answer built from the best-matching passage.
func (s *AskService) Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	logger.Section("Ask Pipeline")
	logger.Debug("Question: %s", question)

	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Indexed %d passages", index.Size())

	ranked := index.Score(question)
	if len(ranked) == 0 || ranked[0].Score <= 0 {
		logger.Info("No passage matches the question")
		return &domain.Answer{Source: domain.AnswerNone}, nil
	}

	topK := s.topK
	if opts.TopK > 0 {
		topK = opts.TopK
	}
	top := ranked
	if len(top) > topK {
		top = top[:topK]
	}
	top = trimZeroScores(top)
	logger.Debug("Top passage %s scored %.4f", top[0].PassageID, top[0].Score)

	contexts := retrieval.SelectContexts(top, index.Passage, s.budget)
	logger.Debug("Selected %d context items within budget", len(contexts))

	if s.generator == nil || opts.LocalOnly {
		logger.Debug("No generation backend in play, answering extractively")
		return s.extractiveAnswer(question, top[0], contexts, index), nil
	}

	result, err := s.generator.Answer(ctx, question, contexts)
	if err != nil {
		logger.Warn("Generation failed, falling back to extractive answer: %v", err)
		return s.extractiveAnswer(question, top[0], contexts, index), nil
	}

	logger.Info("Generated answer from %d context items", len(result.Used))
	return &domain.Answer{
		Text:     result.Answer,
		Source:   domain.AnswerGenerated,
		Contexts: result.Used,
	}, nil
}

// Retrieve ranks passages against a query without answering.
// Only positive-scoring passages are returned, at most limit of them
// (limit <= 0 means no cap).
func (s *AskService) Retrieve(ctx context.Context, query string, limit int) ([]domain.ScoredPassage, error) {
	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}

	ranked := trimZeroScores(index.Score(query))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// buildIndex chunks every stored document and indexes the passages.
func (s *AskService) buildIndex(ctx context.Context) (*retrieval.Index, error) {
	docs, err := s.docStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return retrieval.BuildIndex(retrieval.BuildPassages(docs, s.chunker)), nil
}

// extractiveAnswer summarises the best-matching passage by its key
// sentences. The contexts that would have been offered to a generator
// are attached so callers can still show sources.
func (s *AskService) extractiveAnswer(question string, best domain.ScoredPassage, contexts []domain.ContextItem, index *retrieval.Index) *domain.Answer {
	var text string
	if passage, ok := index.Passage(best.PassageID); ok {
		text = strings.Join(retrieval.ExtractKeySentences(passage.Text, question, DefaultExtractSentences), " ")
	}
	if text == "" && len(contexts) > 0 {
		text = contexts[0].Text
	}

	return &domain.Answer{
		Text:     text,
		Source:   domain.AnswerExtractive,
		Contexts: contexts,
	}
}

// trimZeroScores drops the non-positive tail of a ranked slice so weak
// matches never pad the context selection.
func trimZeroScores(ranked []domain.ScoredPassage) []domain.ScoredPassage {
	for i, sp := range ranked {
		if sp.Score <= 0 {
			return ranked[:i]
		}
	}
	return ranked
}
