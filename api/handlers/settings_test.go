package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"settings-api/api/dto/responses"
	"settings-api/core/domain"
	"settings-api/core/errors"
	"settings-api/core/settings"
	"settings-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSettings_Success(t *testing.T) {
	var captured settings.Query
	service := &mockSettingsService{
		listFunc: func(ctx context.Context, q settings.Query) ([]domain.Setting, error) {
			captured = q
			return []domain.Setting{
				{UUID: "u-1", Type: domain.SettingTypeCompany, Key: "theme", Value: "dark", Owner: 42, Revision: 3},
				{UUID: "u-2", Type: domain.SettingTypeUser, Key: "locale", Value: "nl", Encoded: true},
			}, nil
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/42/settings?key-name=theme&type=COMPANY&owner=7&child-object=x")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.SettingsListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "pd", body.Environment)
	assert.Equal(t, "42", body.CompanyID)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "theme", body.Settings[0].Key)
	assert.True(t, body.Settings[1].Encoded)

	assert.Equal(t, domain.EnvironmentProduction, captured.Environment)
	assert.Equal(t, "42", captured.CompanyID)
	assert.Equal(t, "theme", captured.KeyName)
	assert.Equal(t, "COMPANY", captured.Type)
	assert.Equal(t, "7", captured.Owner)
	assert.Equal(t, "x", captured.ChildObject)
}

func TestListSettings_EmptyList(t *testing.T) {
	_, api := humatest.New(t)
	NewSettingsHandler(&mockSettingsService{}, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/in/companies/1/settings")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.SettingsListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Settings)
}

func TestListSettings_RejectsBadPath(t *testing.T) {
	_, api := humatest.New(t)
	NewSettingsHandler(&mockSettingsService{}, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/qa/companies/1/settings")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Get("/v1/environments/pd/companies/abc/settings")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestListSettings_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: &errors.ValidationError{Field: "type", Message: "bad"}, wantStatus: http.StatusBadRequest},
		{name: "auth", err: &errors.AuthenticationError{Environment: "pd", StatusCode: 401}, wantStatus: http.StatusBadGateway},
		{name: "transient", err: &errors.TransientError{Environment: "pd", Message: "connection refused"}, wantStatus: http.StatusServiceUnavailable},
		{name: "configuration", err: &errors.ConfigurationError{Field: "pd", Message: "no endpoint"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockSettingsService{
				listFunc: func(ctx context.Context, q settings.Query) ([]domain.Setting, error) {
					return nil, tt.err
				},
			}

			_, api := humatest.New(t)
			NewSettingsHandler(service, nil).RegisterRoutes(api)

			resp := api.Get("/v1/environments/pd/companies/1/settings")
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestGetSettingValue_Pagination(t *testing.T) {
	var captured domain.PageOptions
	var query settings.Query
	service := &mockSettingsService{
		valueFunc: func(ctx context.Context, q settings.Query, opts domain.PageOptions) (*settings.ValueResult, error) {
			query = q
			captured = opts
			return &settings.ValueResult{
				Setting: domain.Setting{Key: "template", Type: domain.SettingTypeCompany},
				Page:    domain.Page{Lines: []string{"b", "c"}, TotalLines: 5, HasMore: true},
			}, nil
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/ac/companies/9/settings/template/value?limit=2&offset=1")
	require.Equal(t, http.StatusOK, resp.Code)

	require.NotNil(t, captured.Limit)
	require.NotNil(t, captured.Offset)
	assert.Equal(t, 2, *captured.Limit)
	assert.Equal(t, 1, *captured.Offset)
	assert.Equal(t, "template", query.KeyName)
	assert.Equal(t, domain.EnvironmentAcceptance, query.Environment)

	var body responses.SettingValueResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"b", "c"}, body.Lines)
	assert.Equal(t, 5, body.TotalLines)
	assert.True(t, body.HasMore)
}

func TestGetSettingValue_NoWindowMeansAll(t *testing.T) {
	var captured domain.PageOptions
	service := &mockSettingsService{
		valueFunc: func(ctx context.Context, q settings.Query, opts domain.PageOptions) (*settings.ValueResult, error) {
			captured = opts
			return &settings.ValueResult{Setting: domain.Setting{Key: "k"}}, nil
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/k/value")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Nil(t, captured.Limit)
	assert.Nil(t, captured.Offset)
}

func TestGetSettingValue_NotFound(t *testing.T) {
	service := &mockSettingsService{
		valueFunc: func(ctx context.Context, q settings.Query, opts domain.PageOptions) (*settings.ValueResult, error) {
			return nil, &errors.NotFoundError{Resource: "setting", ID: q.KeyName}
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/missing/value")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "setting not found: missing")
}

func TestSearchSettingValue_Success(t *testing.T) {
	var gotTerm string
	var gotContext int
	service := &mockSettingsService{
		searchFunc: func(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error) {
			gotTerm = term
			gotContext = contextLines
			return &settings.SearchResult{
				Setting: domain.Setting{Key: "template"},
				Result: domain.SearchResult{
					TotalMatches: 1,
					Matches:      []domain.SearchMatch{{LineNumber: 2, Line: "foo", Context: "    1: a\n>>> 2: foo"}},
				},
			}, nil
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/template/search?term=foo&context-lines=1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "foo", gotTerm)
	assert.Equal(t, 1, gotContext)

	var body responses.SettingSearchResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "template", body.Key)
	assert.Equal(t, "foo", body.Term)
	assert.Equal(t, 1, body.TotalMatches)
	assert.Equal(t, 2, body.Matches[0].LineNumber)
}

func TestSearchSettingValue_DefaultContext(t *testing.T) {
	gotContext := -1
	service := &mockSettingsService{
		searchFunc: func(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error) {
			gotContext = contextLines
			return &settings.SearchResult{}, nil
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/k/search?term=x")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 3, gotContext)
}

func TestSearchSettingValue_MissingTerm(t *testing.T) {
	called := false
	service := &mockSettingsService{
		searchFunc: func(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error) {
			called = true
			return &settings.SearchResult{}, nil
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/k/search")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.False(t, called)
}

func TestSearchSettingValue_Encrypted(t *testing.T) {
	service := &mockSettingsService{
		searchFunc: func(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error) {
			return nil, &errors.ValidationError{Field: "key", Message: "setting 'k' is encrypted and cannot be searched"}
		},
	}

	_, api := humatest.New(t)
	NewSettingsHandler(service, nil).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/k/search?term=x")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "encrypted")
}

func TestSearchSettingValue_Disabled(t *testing.T) {
	called := false
	service := &mockSettingsService{
		searchFunc: func(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error) {
			called = true
			return &settings.SearchResult{}, nil
		},
	}
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.SearchEnabled: false,
	})

	_, api := humatest.New(t)
	NewSettingsHandler(service, flags).RegisterRoutes(api)

	resp := api.Get("/v1/environments/pd/companies/1/settings/k/search?term=x")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, called)
}
