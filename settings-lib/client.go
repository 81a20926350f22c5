// ABOUTME: Main client for the settings library providing settings access without an HTTP server
// ABOUTME: Exposes the executor, normalizer, codec, pagination, search and token verification

package settingsapi

import (
	"context"

	"settings-api/core/codec"
	"settings-api/core/domain"
	"settings-api/core/environment"
	"settings-api/core/executor"
	"settings-api/core/interfaces"
	"settings-api/core/normalizer"
	"settings-api/core/pagination"
	"settings-api/core/search"
	"settings-api/core/settings"
	"settings-api/core/tokens"
	"settings-api/infrastructure/http/standard"
)

// Query selects settings for one company in one environment
type Query = settings.Query

// Client is the main entry point for the settings library.
// It is safe for concurrent use; the endpoint table is fixed at construction.
type Client struct {
	resolver *environment.Resolver
	executor *executor.Executor
	service  *settings.Service
	verifier *tokens.Verifier
	config   Config
}

// NewClient creates a new settings client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.HTTPClient == nil {
		config.HTTPClient = standard.NewStandardHTTPClient(config.Timeout)
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}.WithDefaults()

	resolver := environment.NewResolver(config.Endpoints)
	exec := executor.NewExecutor(resolver, deps, config.Retry)

	return &Client{
		resolver: resolver,
		executor: exec,
		service:  settings.NewService(exec, deps.Logger),
		verifier: tokens.NewVerifier(exec, deps.Logger, config.ProbeCompanyID),
		config:   config,
	}, nil
}

// Environments lists the environments with a complete endpoint
func (c *Client) Environments() []domain.Environment {
	return c.resolver.Configured()
}

// Execute performs a GET against env with retries. headers are merged over
// the defaults. HTTP and network failures are reported in the result; the
// error is non-nil only for configuration problems.
func (c *Client) Execute(ctx context.Context, url string, params map[string]string, env domain.Environment, headers map[string]string) (domain.RequestResult, error) {
	var opts *executor.Options
	if len(headers) > 0 {
		opts = &executor.Options{Headers: headers}
	}
	result, err := c.executor.Execute(ctx, url, params, env, opts)
	if err != nil {
		return result, wrapError(err)
	}
	return result, nil
}

// Parse normalizes a JSON or XML payload into settings
func (c *Client) Parse(raw interface{}) ([]domain.Setting, error) {
	list, err := normalizer.Parse(raw)
	if err != nil {
		return nil, wrapError(err)
	}
	return list, nil
}

// Decode returns the settings with encoded values decoded
func (c *Client) Decode(list []domain.Setting) []domain.Setting {
	return codec.DecodeAll(list)
}

// Paginate returns a window of lines over value
func (c *Client) Paginate(value string, opts domain.PageOptions) domain.Page {
	return pagination.Paginate(value, opts)
}

// Search finds lines in value containing term, case-insensitively
func (c *Client) Search(value, term string, contextLines int) (domain.SearchResult, error) {
	res, err := search.Search(value, term, contextLines)
	if err != nil {
		return res, wrapError(err)
	}
	return res, nil
}

// VerifyTokens probes every environment once and reports the verdicts in pd, in, ac order
func (c *Client) VerifyTokens(ctx context.Context) []domain.TokenStatus {
	return c.verifier.Verify(ctx)
}

// ListSettings fetches, normalizes and decodes a company's settings
func (c *Client) ListSettings(ctx context.Context, q Query) ([]domain.Setting, error) {
	list, err := c.service.List(ctx, q)
	if err != nil {
		return nil, wrapError(err)
	}
	return list, nil
}

// SettingValue returns a window over one setting's decoded value
func (c *Client) SettingValue(ctx context.Context, q Query, opts domain.PageOptions) (*settings.ValueResult, error) {
	res, err := c.service.Value(ctx, q, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	return res, nil
}

// SearchSetting searches inside one setting's decoded value
func (c *Client) SearchSetting(ctx context.Context, q Query, term string, contextLines int) (*settings.SearchResult, error) {
	res, err := c.service.Search(ctx, q, term, contextLines)
	if err != nil {
		return nil, wrapError(err)
	}
	return res, nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if len(config.Endpoints) == 0 {
		return NewError(ErrorTypeConfiguration, "at least one environment endpoint is required")
	}

	if config.Retry.MaxAttempts < 1 {
		return NewError(ErrorTypeConfiguration, "retry attempts must be at least 1")
	}

	if config.Timeout <= 0 && config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "timeout must be positive")
	}

	return nil
}
