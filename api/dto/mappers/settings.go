// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"settings-api/api/dto/responses"
	"settings-api/core/domain"
	"settings-api/core/settings"
)

// ToSettingResponse converts a domain Setting to a SettingResponse DTO
func ToSettingResponse(s domain.Setting) responses.SettingResponse {
	return responses.SettingResponse{
		UUID:      s.UUID,
		Type:      string(s.Type),
		Key:       s.Key,
		Value:     s.Value,
		Encoded:   s.Encoded,
		Encrypted: s.Encrypted,
		Owner:     s.Owner,
		Revision:  s.Revision,
		Deleted:   s.Deleted,
		Created:   s.Created,
		Modified:  s.Modified,
	}
}

// ToSettingsListResponse converts a settings list to its response DTO
func ToSettingsListResponse(env domain.Environment, companyID string, list []domain.Setting) *responses.SettingsListResponse {
	out := make([]responses.SettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSettingResponse(s))
	}

	return &responses.SettingsListResponse{
		Environment: env.String(),
		CompanyID:   companyID,
		Count:       len(out),
		Settings:    out,
	}
}

// ToValueResponse converts a paginated value to its response DTO
func ToValueResponse(res *settings.ValueResult) *responses.SettingValueResponse {
	if res == nil {
		return nil
	}

	lines := res.Page.Lines
	if lines == nil {
		lines = []string{}
	}

	return &responses.SettingValueResponse{
		Key:        res.Setting.Key,
		Type:       string(res.Setting.Type),
		Encoded:    res.Setting.Encoded,
		Encrypted:  res.Setting.Encrypted,
		Lines:      lines,
		TotalLines: res.Page.TotalLines,
		HasMore:    res.Page.HasMore,
	}
}

// ToSearchResponse converts search matches to their response DTO
func ToSearchResponse(term string, res *settings.SearchResult) *responses.SettingSearchResponse {
	if res == nil {
		return nil
	}

	matches := make([]responses.SearchMatchResponse, 0, len(res.Result.Matches))
	for _, m := range res.Result.Matches {
		matches = append(matches, responses.SearchMatchResponse{
			LineNumber: m.LineNumber,
			Line:       m.Line,
			Context:    m.Context,
		})
	}

	return &responses.SettingSearchResponse{
		Key:          res.Setting.Key,
		Term:         term,
		TotalMatches: res.Result.TotalMatches,
		Matches:      matches,
	}
}

// ToTokenVerificationResponse converts token statuses to their response DTO
func ToTokenVerificationResponse(statuses []domain.TokenStatus) *responses.TokenVerificationResponse {
	resp := &responses.TokenVerificationResponse{
		AllValid: len(statuses) > 0,
		Results:  make([]responses.TokenStatusResponse, 0, len(statuses)),
	}

	for _, s := range statuses {
		if !s.Valid {
			resp.AllValid = false
		}
		resp.Results = append(resp.Results, responses.TokenStatusResponse{
			Environment:  s.Environment.String(),
			Valid:        s.Valid,
			StatusCode:   s.StatusCode,
			Message:      s.Message,
			Note:         s.Note,
			BaseURL:      s.BaseURL,
			TokenPreview: s.TokenPreview,
		})
	}

	return resp
}
