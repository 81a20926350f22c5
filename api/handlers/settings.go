// ABOUTME: Settings handlers for the Huma API
// ABOUTME: Lists settings, pages through a value and searches inside a value

package handlers

import (
	"context"
	"net/http"

	"settings-api/api/dto/mappers"
	"settings-api/api/dto/requests"
	"settings-api/api/dto/responses"
	"settings-api/core/domain"
	"settings-api/core/settings"
	"settings-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// SettingsService interface defines the methods needed from the settings service
type SettingsService interface {
	List(ctx context.Context, q settings.Query) ([]domain.Setting, error)
	Value(ctx context.Context, q settings.Query, opts domain.PageOptions) (*settings.ValueResult, error)
	Search(ctx context.Context, q settings.Query, term string, contextLines int) (*settings.SearchResult, error)
}

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	service SettingsService
	flags   featureflags.Manager
}

// NewSettingsHandler creates a new settings handler. flags may be nil.
func NewSettingsHandler(service SettingsService, flags featureflags.Manager) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		flags:   flags,
	}
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listSettings",
		Method:      http.MethodGet,
		Path:        "/v1/environments/{env}/companies/{companyId}/settings",
		Summary:     "List company settings",
		Description: "Fetches a company's settings from the given environment, normalized and with encoded values decoded",
		Tags:        []string{"Settings"},
	}, h.ListSettings)

	huma.Register(api, huma.Operation{
		OperationID: "getSettingValue",
		Method:      http.MethodGet,
		Path:        "/v1/environments/{env}/companies/{companyId}/settings/{key}/value",
		Summary:     "Page through a setting value",
		Description: "Returns a window of lines over the decoded value of one setting",
		Tags:        []string{"Settings"},
	}, h.GetSettingValue)

	huma.Register(api, huma.Operation{
		OperationID: "searchSettingValue",
		Method:      http.MethodGet,
		Path:        "/v1/environments/{env}/companies/{companyId}/settings/{key}/search",
		Summary:     "Search inside a setting value",
		Description: "Finds lines containing a literal term, case-insensitively, with surrounding context. Encrypted settings cannot be searched.",
		Tags:        []string{"Settings"},
	}, h.SearchSettingValue)
}

// ListSettingsInput defines the input for the ListSettings operation
type ListSettingsInput struct {
	requests.SettingsParams
}

// ListSettingsOutput defines the output for the ListSettings operation
type ListSettingsOutput struct {
	Body responses.SettingsListResponse
}

// ListSettings handles GET /v1/environments/{env}/companies/{companyId}/settings
func (h *SettingsHandler) ListSettings(ctx context.Context, input *ListSettingsInput) (*ListSettingsOutput, error) {
	q := input.ToQuery()

	list, err := h.service.List(ctx, q)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListSettingsOutput{
		Body: *mappers.ToSettingsListResponse(q.Environment, q.CompanyID, list),
	}, nil
}

// SettingValueInput defines the input for the GetSettingValue operation
type SettingValueInput struct {
	requests.KeyParams
	requests.PageParams
}

// SettingValueOutput defines the output for the GetSettingValue operation
type SettingValueOutput struct {
	Body responses.SettingValueResponse
}

// GetSettingValue handles GET .../settings/{key}/value
func (h *SettingsHandler) GetSettingValue(ctx context.Context, input *SettingValueInput) (*SettingValueOutput, error) {
	res, err := h.service.Value(ctx, input.KeyParams.ToQuery(), input.ToPageOptions())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SettingValueOutput{Body: *mappers.ToValueResponse(res)}, nil
}

// SearchSettingInput defines the input for the SearchSettingValue operation
type SearchSettingInput struct {
	requests.KeyParams
	requests.SearchParams
}

// SearchSettingOutput defines the output for the SearchSettingValue operation
type SearchSettingOutput struct {
	Body responses.SettingSearchResponse
}

// SearchSettingValue handles GET .../settings/{key}/search
func (h *SettingsHandler) SearchSettingValue(ctx context.Context, input *SearchSettingInput) (*SearchSettingOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.SearchEnabled) {
		return nil, huma.Error404NotFound("search is disabled")
	}

	res, err := h.service.Search(ctx, input.KeyParams.ToQuery(), input.Term, input.ContextLines)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchSettingOutput{Body: *mappers.ToSearchResponse(input.Term, res)}, nil
}
