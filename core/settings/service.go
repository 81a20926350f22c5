// ABOUTME: Settings service runs the fetch, normalize and decode pipeline for one query
// ABOUTME: Provides list, paginated value and in-value search independent of any transport

package settings

import (
	"context"
	"strings"

	"settings-api/core/codec"
	"settings-api/core/domain"
	"settings-api/core/errors"
	"settings-api/core/executor"
	"settings-api/core/interfaces"
	"settings-api/core/normalizer"
	"settings-api/core/pagination"
	"settings-api/core/search"
)

// ValueResult is one setting with a window over its value
type ValueResult struct {
	Setting domain.Setting
	Page    domain.Page
}

// SearchResult is one setting with the matches found in its value
type SearchResult struct {
	Setting domain.Setting
	Result  domain.SearchResult
}

// Service handles settings retrieval
type Service struct {
	executor *executor.Executor
	logger   interfaces.Logger
}

// NewService creates a new settings service
func NewService(exec *executor.Executor, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{executor: exec, logger: logger}
}

// List fetches, normalizes and decodes the settings matching q
func (s *Service) List(ctx context.Context, q Query) ([]domain.Setting, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	baseURL, _, err := s.executor.Resolver().Resolve(q.Environment)
	if err != nil {
		return nil, err
	}

	target := baseURL + "/setting/company/" + strings.TrimSpace(q.CompanyID)
	result, err := s.executor.Execute(ctx, target, q.params(), q.Environment, nil)
	if err != nil {
		return nil, err
	}
	if err := errors.FromResult(result); err != nil {
		return nil, err
	}

	parsed, err := normalizer.Parse(result.Body)
	if err != nil {
		s.logger.Error("Failed to parse settings response", map[string]interface{}{
			"environment": q.Environment.String(),
			"company_id":  q.CompanyID,
			"error":       err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Fetched settings", map[string]interface{}{
		"environment": q.Environment.String(),
		"company_id":  q.CompanyID,
		"count":       len(parsed),
		"attempts":    result.Attempts,
	})

	return codec.DecodeAll(parsed), nil
}

// Value returns a window over the value of the setting named q.KeyName.
// Encrypted values are paginated as stored.
func (s *Service) Value(ctx context.Context, q Query, opts domain.PageOptions) (*ValueResult, error) {
	setting, err := s.find(ctx, q)
	if err != nil {
		return nil, err
	}

	return &ValueResult{
		Setting: setting,
		Page:    pagination.Paginate(setting.Value, opts),
	}, nil
}

// Search looks for term inside the value of the setting named q.KeyName
func (s *Service) Search(ctx context.Context, q Query, term string, contextLines int) (*SearchResult, error) {
	if term == "" {
		return nil, &errors.ValidationError{Field: "term", Message: "search term cannot be empty"}
	}

	setting, err := s.find(ctx, q)
	if err != nil {
		return nil, err
	}

	if setting.Encrypted {
		return nil, &errors.ValidationError{
			Field:   "key",
			Message: "setting '" + setting.Key + "' is encrypted and cannot be searched",
		}
	}

	res, err := search.Search(setting.Value, term, contextLines)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Setting: setting, Result: res}, nil
}

// find returns the first setting whose key equals q.KeyName
func (s *Service) find(ctx context.Context, q Query) (domain.Setting, error) {
	if q.KeyName == "" {
		return domain.Setting{}, &errors.ValidationError{Field: "key", Message: "setting key is required"}
	}

	list, err := s.List(ctx, q)
	if err != nil {
		return domain.Setting{}, err
	}

	for _, setting := range list {
		if setting.Key == q.KeyName {
			return setting, nil
		}
	}

	return domain.Setting{}, &errors.NotFoundError{Resource: "setting", ID: q.KeyName}
}
