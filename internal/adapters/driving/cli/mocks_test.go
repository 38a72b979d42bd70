package cli

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
	gotOpts     domain.AskOptions
}

func (m *mockAskService) Ask(_ context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	m.gotQuestion = question
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.answer == nil {
		return &domain.Answer{Source: domain.AnswerNone}, nil
	}
	return m.answer, nil
}

func (m *mockAskService) Retrieve(_ context.Context, _ string, _ int) ([]domain.ScoredPassage, error) {
	return m.results, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	documents []domain.Document
	document  *domain.Document
	err       error

	importedFeedURLs []string
	importedDir      string
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

func (m *mockCorpusService) ImportFeed(_ context.Context, url string) ([]domain.Document, error) {
	m.importedFeedURLs = append(m.importedFeedURLs, url)
	return m.documents, m.err
}

func (m *mockCorpusService) ImportDir(_ context.Context, dir string) ([]domain.Document, error) {
	m.importedDir = dir
	return m.documents, m.err
}

func (m *mockCorpusService) ImportFile(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	saved    *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.Settings) error {
	m.saved = settings
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *mockSettingsService) ConfigPath() string {
	return "/tmp/ansa-test/config.toml"
}
