package mcp

import (
	"context"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer  *domain.Answer
	results []domain.ScoredPassage
	err     error

	gotQuestion string
	gotLimit    int
}

func (m *mockAskService) Ask(
	_ context.Context,
	question string,
	_ domain.AskOptions,
) (*domain.Answer, error) {
	m.gotQuestion = question
	if m.err != nil {
		return nil, m.err
	}
	if m.answer == nil {
		return &domain.Answer{Source: domain.AnswerNone}, nil
	}
	return m.answer, nil
}

func (m *mockAskService) Retrieve(
	_ context.Context,
	_ string,
	limit int,
) ([]domain.ScoredPassage, error) {
	m.gotLimit = limit
	return m.results, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	documents []domain.Document
	document  *domain.Document
	err       error
}

func (m *mockCorpusService) Add(_ context.Context, _, _, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockCorpusService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockCorpusService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCorpusService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockCorpusService) ImportFeed(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCorpusService) ImportDir(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCorpusService) ImportFile(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}
