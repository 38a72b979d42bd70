package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/logger"
	"github.com/custodia-labs/ansa-cli/internal/retrieval"
)

const (
	// DefaultAnswerContextBytes caps the serialized size of the context
	// items forwarded to the generation backend.
	DefaultAnswerContextBytes = 8000

	// answerMaxTokens bounds the completion length requested from the model.
	answerMaxTokens = 1024

	// answerTemperature keeps completions close to the source material.
	answerTemperature = 0.2
)

// defaultAnswerPrompt is the embedded fallback template, used when no
// prompt store is configured or the store cannot serve the answer prompt.
const defaultAnswerPrompt = `Answer the question using ONLY the context below.
If the context does not contain the answer, say you don't know.
Answer in the language the question was asked in.

Context:
%s

Question: %s
Answer:`

// Ensure AnswerService implements the interfaces.
var (
	_ driven.GenerationService = (*AnswerService)(nil)
	_ driven.PromptStoreAware  = (*AnswerService)(nil)
)

// AnswerService produces prose answers by prompting a language model
// with a question and its selected context passages.
type AnswerService struct {
	llm             driven.LLMClient
	promptStore     driven.PromptStore
	maxContextBytes int
}

// NewAnswerService creates an answer service over the given model client.
// A nil client is allowed; Answer then reports the backend as unavailable
// so callers can fall back to extractive answers.
func NewAnswerService(llm driven.LLMClient) *AnswerService {
	return &AnswerService{
		llm:             llm,
		maxContextBytes: DefaultAnswerContextBytes,
	}
}

// SetPromptStore sets the store for the customisable answer template.
func (s *AnswerService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// SetMaxContextBytes overrides the serialized-context ceiling.
func (s *AnswerService) SetMaxContextBytes(n int) {
	if n > 0 {
		s.maxContextBytes = n
	}
}

// Answer implements driven.GenerationService.
func (s *AnswerService) Answer(ctx context.Context, question string, contexts []domain.ContextItem) (*domain.GenerationResult, error) {
	if s.llm == nil {
		return nil, domain.ErrGenerationUnavailable
	}

	used := s.admit(contexts)
	logger.Debug("Generating answer with %d of %d context items", len(used), len(contexts))

	completion, err := s.llm.Complete(ctx, s.buildPrompt(question, used), driven.CompleteOptions{
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	answer := strings.TrimSpace(completion)
	if answer == "" {
		return nil, fmt.Errorf("%w: model returned an empty completion", domain.ErrGenerationFailed)
	}

	return &domain.GenerationResult{Answer: answer, Used: used}, nil
}

// admit accepts context items in order until their serialized sizes
// would exceed the ceiling. The first item that would overflow stops
// admission entirely, so the accepted set is always a prefix of the
// input ranking.
func (s *AnswerService) admit(contexts []domain.ContextItem) []domain.ContextItem {
	used := make([]domain.ContextItem, 0, len(contexts))
	total := 0
	for _, item := range contexts {
		size := retrieval.ContextItemSize(item)
		if total+size > s.maxContextBytes {
			break
		}
		used = append(used, item)
		total += size
	}
	return used
}

// buildPrompt renders the answer template over the accepted contexts.
func (s *AnswerService) buildPrompt(question string, contexts []domain.ContextItem) string {
	template := defaultAnswerPrompt
	if s.promptStore != nil {
		if loaded, err := s.promptStore.Load(driven.PromptAnswer); err == nil && strings.TrimSpace(loaded) != "" {
			template = loaded
		}
	}

	var block strings.Builder
	for i, item := range contexts {
		if i > 0 {
			block.WriteString("\n\n")
		}
		fmt.Fprintf(&block, "[%d] %s\n%s", i+1, item.Title, item.Text)
	}
	if block.Len() == 0 {
		block.WriteString("(no context available)")
	}

	return fmt.Sprintf(template, block.String(), question)
}
