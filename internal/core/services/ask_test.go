package services

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/retrieval"
)

// --- Mock implementations ---

// mockGenerator implements driven.GenerationService for testing.
type mockGenerator struct {
	result      *domain.GenerationResult
	answerErr   error
	calls       int
	gotQuestion string
	gotContexts []domain.ContextItem
}

func (m *mockGenerator) Answer(_ context.Context, question string, contexts []domain.ContextItem) (*domain.GenerationResult, error) {
	m.calls++
	m.gotQuestion = question
	m.gotContexts = contexts
	if m.answerErr != nil {
		return nil, m.answerErr
	}
	return m.result, nil
}

// failingDocStore wraps the memory store and fails List.
type failingDocStore struct {
	*memory.DocumentStore
}

func (f *failingDocStore) List(_ context.Context) ([]domain.Document, error) {
	return nil, assert.AnError
}

// --- Test helpers ---

func setupAskCorpus(t *testing.T) *memory.DocumentStore {
	t.Helper()
	store := memory.NewDocumentStore()
	ctx := context.Background()

	docs := []domain.Document{
		{ID: "doc-1", Title: "Morning Sickness", URL: "https://example.com/1", Content: "Morning sickness is nausea during pregnancy. It usually fades by week fourteen."},
		{ID: "doc-2", Title: "Folic Acid", URL: "https://example.com/2", Content: "Folic acid supplements are recommended before conception and during early pregnancy."},
		{ID: "doc-3", Title: "Heartburn", URL: "https://example.com/3", Content: "Heartburn is common in the third trimester. Small meals can help."},
	}
	for i := range docs {
		require.NoError(t, store.Add(ctx, &docs[i]))
	}
	return store
}

// --- Tests ---

func TestNewAskService(t *testing.T) {
	service := NewAskService(memory.NewDocumentStore(), nil)

	require.NotNil(t, service)
	assert.Equal(t, DefaultTopK, service.topK)
	assert.NotNil(t, service.chunker)
}

func TestAskService_Ask_EmptyCorpus(t *testing.T) {
	service := NewAskService(memory.NewDocumentStore(), nil)

	answer, err := service.Ask(context.Background(), "anything at all?", domain.AskOptions{})

	require.NoError(t, err)
	require.NotNil(t, answer)
	assert.Equal(t, domain.AnswerNone, answer.Source)
	assert.Empty(t, answer.Text)
	assert.Empty(t, answer.Contexts)
}

func TestAskService_Ask_NoMatch(t *testing.T) {
	generator := &mockGenerator{result: &domain.GenerationResult{Answer: "should not run"}}
	service := NewAskService(setupAskCorpus(t), generator)

	answer, err := service.Ask(context.Background(), "quantum chromodynamics", domain.AskOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.AnswerNone, answer.Source)
	assert.Empty(t, answer.Text)
	assert.Zero(t, generator.calls, "generator must not run without a match")
}

func TestAskService_Ask_ExtractiveWithoutGenerator(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)

	answer, err := service.Ask(context.Background(), "When does morning sickness fade?", domain.AskOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.AnswerExtractive, answer.Source)
	assert.Contains(t, answer.Text, "Morning sickness is nausea")

	require.NotEmpty(t, answer.Contexts)
	assert.Equal(t, "Morning Sickness", answer.Contexts[0].Title)
	assert.Equal(t, "https://example.com/1", answer.Contexts[0].URL)
}

func TestAskService_Ask_Generated(t *testing.T) {
	used := []domain.ContextItem{{Text: "the item the generator accepted"}}
	generator := &mockGenerator{result: &domain.GenerationResult{Answer: "It fades by week fourteen.", Used: used}}
	service := NewAskService(setupAskCorpus(t), generator)

	answer, err := service.Ask(context.Background(), "When does morning sickness fade?", domain.AskOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.AnswerGenerated, answer.Source)
	assert.Equal(t, "It fades by week fourteen.", answer.Text)

	// The answer reports what the generator used, not what was offered
	assert.Equal(t, used, answer.Contexts)

	assert.Equal(t, 1, generator.calls)
	assert.Equal(t, "When does morning sickness fade?", generator.gotQuestion)
	assert.NotEmpty(t, generator.gotContexts)
}

func TestAskService_Ask_FallsBackWhenGenerationFails(t *testing.T) {
	generator := &mockGenerator{answerErr: domain.ErrGenerationFailed}
	service := NewAskService(setupAskCorpus(t), generator)

	answer, err := service.Ask(context.Background(), "When does morning sickness fade?", domain.AskOptions{})

	require.NoError(t, err, "generation failure is not a pipeline failure")
	assert.Equal(t, domain.AnswerExtractive, answer.Source)
	assert.Contains(t, answer.Text, "Morning sickness")
	assert.Equal(t, 1, generator.calls)
}

func TestAskService_Ask_FallsBackWhenGeneratorUnavailable(t *testing.T) {
	generator := &mockGenerator{answerErr: domain.ErrGenerationUnavailable}
	service := NewAskService(setupAskCorpus(t), generator)

	answer, err := service.Ask(context.Background(), "What helps with heartburn?", domain.AskOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.AnswerExtractive, answer.Source)
	assert.NotEmpty(t, answer.Text)
}

func TestAskService_Ask_TopKCapsContexts(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)
	service.SetTopK(1)

	// "pregnancy" matches two documents, but only the best passage
	// may be offered
	answer, err := service.Ask(context.Background(), "pregnancy", domain.AskOptions{})

	require.NoError(t, err)
	assert.Len(t, answer.Contexts, 1)
}

func TestAskService_Ask_OptionsTopKOverridesDefault(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)

	answer, err := service.Ask(context.Background(), "pregnancy", domain.AskOptions{TopK: 1})

	require.NoError(t, err)
	assert.Len(t, answer.Contexts, 1)
}

func TestAskService_Ask_LocalOnlySkipsGenerator(t *testing.T) {
	generator := &mockGenerator{result: &domain.GenerationResult{Answer: "should not run"}}
	service := NewAskService(setupAskCorpus(t), generator)

	answer, err := service.Ask(context.Background(), "When does morning sickness fade?", domain.AskOptions{LocalOnly: true})

	require.NoError(t, err)
	assert.Equal(t, domain.AnswerExtractive, answer.Source)
	assert.Zero(t, generator.calls, "generator must not run in local-only mode")
}

func TestAskService_Ask_BudgetTruncatesContexts(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)
	service.SetBudget(retrieval.ContextBudget{PerItemChars: 10, TotalBytes: 8000})

	answer, err := service.Ask(context.Background(), "When does morning sickness fade?", domain.AskOptions{})

	require.NoError(t, err)
	require.NotEmpty(t, answer.Contexts)
	assert.LessOrEqual(t, utf8.RuneCountInString(answer.Contexts[0].Text), 10)
}

func TestAskService_Ask_StoreError(t *testing.T) {
	store := &failingDocStore{DocumentStore: memory.NewDocumentStore()}
	service := NewAskService(store, nil)

	_, err := service.Ask(context.Background(), "anything", domain.AskOptions{})

	require.Error(t, err)
}

func TestAskService_Retrieve(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)

	results, err := service.Retrieve(context.Background(), "pregnancy", 0)

	require.NoError(t, err)
	require.Len(t, results, 2)

	// Scores are positive and descending
	assert.Greater(t, results[0].Score, 0.0)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)

	ids := []string{results[0].PassageID, results[1].PassageID}
	assert.Contains(t, ids, "doc-1::0")
	assert.Contains(t, ids, "doc-2::0")
}

func TestAskService_Retrieve_Limit(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)

	results, err := service.Retrieve(context.Background(), "pregnancy", 1)

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestAskService_Retrieve_NoMatches(t *testing.T) {
	service := NewAskService(setupAskCorpus(t), nil)

	results, err := service.Retrieve(context.Background(), "quantum chromodynamics", 0)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAskService_Retrieve_StoreError(t *testing.T) {
	store := &failingDocStore{DocumentStore: memory.NewDocumentStore()}
	service := NewAskService(store, nil)

	_, err := service.Retrieve(context.Background(), "anything", 0)

	require.Error(t, err)
}

func TestAskService_Setters_IgnoreInvalid(t *testing.T) {
	service := NewAskService(memory.NewDocumentStore(), nil)

	service.SetTopK(0)
	assert.Equal(t, DefaultTopK, service.topK)

	service.SetChunker(nil)
	assert.NotNil(t, service.chunker)

	service.SetTopK(3)
	assert.Equal(t, 3, service.topK)
}
