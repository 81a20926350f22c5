// ABOUTME: Configuration options for the settings library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package settingsapi

import (
	"strings"
	"time"

	"settings-api/core/domain"
	"settings-api/core/executor"
	"settings-api/core/interfaces"
	"settings-api/core/tokens"
)

// DefaultTimeout bounds each HTTP attempt of the built-in client
const DefaultTimeout = 30 * time.Second

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs single attempts; built from Timeout when nil
	HTTPClient interfaces.HTTPClient

	Logger  interfaces.Logger
	Metrics interfaces.Metrics

	// Endpoints is copied into the resolver at construction
	Endpoints map[domain.Environment]domain.Endpoint

	Retry          executor.RetryPolicy
	Timeout        time.Duration
	ProbeCompanyID int
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics recorder
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithEndpoint configures one environment
func WithEndpoint(env domain.Environment, baseURL, token string) Option {
	return func(c *Config) error {
		if !env.Valid() {
			return NewError(ErrorTypeConfiguration, "unknown environment").WithContext("environment", env.String())
		}
		if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(token) == "" {
			return NewError(ErrorTypeConfiguration, "base URL and token are required").WithContext("environment", env.String())
		}
		if c.Endpoints == nil {
			c.Endpoints = make(map[domain.Environment]domain.Endpoint)
		}
		c.Endpoints[env] = domain.Endpoint{BaseURL: baseURL, Token: token}
		return nil
	}
}

// WithEndpoints configures several environments at once
func WithEndpoints(endpoints map[domain.Environment]domain.Endpoint) Option {
	return func(c *Config) error {
		for env, ep := range endpoints {
			if err := WithEndpoint(env, ep.BaseURL, ep.Token)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithRetry sets the attempt count and the first backoff delay
func WithRetry(maxAttempts int, initialDelay time.Duration) Option {
	return func(c *Config) error {
		if maxAttempts < 1 || initialDelay < 0 {
			return NewError(ErrorTypeConfiguration, "invalid retry policy")
		}
		c.Retry = executor.RetryPolicy{MaxAttempts: maxAttempts, InitialDelay: initialDelay}
		return nil
	}
}

// WithTimeout sets the per-attempt timeout of the built-in HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.Timeout = timeout
		return nil
	}
}

// WithProbeCompanyID sets the company used by token verification probes
func WithProbeCompanyID(id int) Option {
	return func(c *Config) error {
		if id < 1 {
			return NewError(ErrorTypeConfiguration, "probe company ID must be positive")
		}
		c.ProbeCompanyID = id
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Logger:         interfaces.NopLogger{},
		Metrics:        interfaces.NopMetrics{},
		Retry:          executor.DefaultRetryPolicy(),
		Timeout:        DefaultTimeout,
		ProbeCompanyID: tokens.DefaultProbeCompanyID,
	}
}
