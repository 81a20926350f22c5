package handlers

import (
	"context"

	"settings-api/core/domain"
	"settings-api/core/settings"
)

type mockSettingsService struct {
	listFunc   func(ctx context.Context, q settings.Query) ([]domain.Setting, error)
	valueFunc  func(ctx context.Context, q settings.Query, opts domain.PageOptions) (*settings.ValueResult, error)
	searchFunc func(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error)
}

func (m *mockSettingsService) List(ctx context.Context, q settings.Query) ([]domain.Setting, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockSettingsService) Value(ctx context.Context, q settings.Query, opts domain.PageOptions) (*settings.ValueResult, error) {
	if m.valueFunc != nil {
		return m.valueFunc(ctx, q, opts)
	}
	return &settings.ValueResult{}, nil
}

func (m *mockSettingsService) Search(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, q, term, contextLines)
	}
	return &settings.SearchResult{}, nil
}

type mockTokenVerifier struct {
	statuses []domain.TokenStatus
	calls    int
}

func (m *mockTokenVerifier) Verify(ctx context.Context) []domain.TokenStatus {
	m.calls++
	return m.statuses
}

type staticEnvironments []domain.Environment

func (s staticEnvironments) Configured() []domain.Environment {
	return s
}
