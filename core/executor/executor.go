// ABOUTME: Request executor issues authenticated GETs against an environment with bounded retries
// ABOUTME: Classifies every outcome into a RequestResult and never raises for HTTP-level failures

package executor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"settings-api/core/domain"
	"settings-api/core/environment"
	"settings-api/core/errors"
	"settings-api/core/interfaces"

	"github.com/google/uuid"
)

const (
	// DefaultMaxAttempts is the total number of attempts per call
	DefaultMaxAttempts = 3

	// DefaultInitialDelay is the wait after the first failed attempt
	DefaultInitialDelay = 250 * time.Millisecond

	maxErrorBodyLength = 200
)

// RetryPolicy bounds the attempts of one Execute call
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// DefaultRetryPolicy returns 3 attempts with 250ms, 500ms backoff
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
	}
}

// Backoff returns the wait after the given 1-based attempt: InitialDelay * 2^(attempt-1)
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.InitialDelay * time.Duration(1<<(attempt-1))
}

// Options carries per-call extras
type Options struct {
	// Headers are merged over the default headers, Authorization included
	Headers map[string]string

	// MaxAttempts overrides the policy for this call when positive
	MaxAttempts int
}

// Executor performs authenticated requests with retry and backoff
type Executor struct {
	resolver *environment.Resolver
	deps     interfaces.Dependencies
	policy   RetryPolicy
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates a new executor. A zero policy falls back to DefaultRetryPolicy.
func NewExecutor(resolver *environment.Resolver, deps interfaces.Dependencies, policy RetryPolicy) *Executor {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = DefaultMaxAttempts
	}
	if policy.InitialDelay <= 0 {
		policy.InitialDelay = DefaultInitialDelay
	}

	return &Executor{
		resolver: resolver,
		deps:     deps.WithDefaults(),
		policy:   policy,
		sleep:    sleepContext,
	}
}

// Policy returns the retry policy in effect
func (e *Executor) Policy() RetryPolicy {
	return e.policy
}

// Resolver returns the environment resolver the executor authenticates with
func (e *Executor) Resolver() *environment.Resolver {
	return e.resolver
}

// Execute performs a GET against rawURL with params, authenticated for env.
//
// The returned error is non-nil only for configuration problems detected
// before any request is attempted. Every HTTP or network outcome is reported
// through the RequestResult.
//
// Cancelling ctx does not stop a started call: attempts and backoff waits run
// until one attempt succeeds or the attempts are spent. Each attempt is bounded
// by the HTTP client's timeout. Values carried by ctx are kept.
func (e *Executor) Execute(ctx context.Context, rawURL string, params map[string]string, env domain.Environment, opts *Options) (domain.RequestResult, error) {
	baseURL, token, err := e.resolver.Resolve(env)
	if err != nil {
		return domain.RequestResult{Environment: env, Kind: domain.FailureUnknown, Error: err.Error()}, err
	}

	if e.deps.HTTPClient == nil {
		err := &errors.ConfigurationError{Field: "http_client", Message: "HTTP client not configured"}
		return domain.RequestResult{Environment: env, BaseURL: baseURL, Kind: domain.FailureUnknown, Error: err.Error()}, err
	}

	target, err := buildURL(rawURL, params)
	if err != nil {
		cfgErr := &errors.ConfigurationError{Field: "url", Message: err.Error()}
		return domain.RequestResult{Environment: env, BaseURL: baseURL, Kind: domain.FailureUnknown, Error: cfgErr.Error()}, cfgErr
	}

	headers := map[string]string{
		"Accept":        "application/json, application/xml;q=0.9",
		"Authorization": "Bearer " + token,
	}
	if opts != nil {
		for k, v := range opts.Headers {
			headers[k] = v
		}
	}

	maxAttempts := e.policy.MaxAttempts
	if opts != nil && opts.MaxAttempts > 0 {
		maxAttempts = opts.MaxAttempts
	}

	ctx = context.WithoutCancel(ctx)

	preview := domain.MaskToken(token)
	requestID := uuid.New().String()
	start := time.Now()

	var last *domain.RequestResult
	attempts := 0

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attempts = attempt

		e.deps.Logger.Debug("Executing API request", map[string]interface{}{
			"request_id":    requestID,
			"url":           target,
			"params":        params,
			"environment":   env.String(),
			"token_preview": preview,
			"attempt":       attempt,
		})

		result := e.attempt(ctx, target, headers, env)
		e.deps.Metrics.RecordAttempt(env.String(), outcomeLabel(result))

		if result.Success {
			result.Attempts = attempts
			e.deps.Logger.Debug("API request succeeded", map[string]interface{}{
				"request_id": requestID,
				"status":     result.StatusCode,
				"attempt":    attempt,
			})
			e.deps.Metrics.ObserveRequest(env.String(), true, time.Since(start))
			return result, nil
		}

		result.BaseURL = baseURL
		result.TokenPreview = preview
		last = &result

		e.deps.Logger.Warn("API request failed", map[string]interface{}{
			"request_id":    requestID,
			"environment":   env.String(),
			"base_url":      baseURL,
			"token_preview": preview,
			"status":        result.StatusCode,
			"message":       result.Error,
			"attempt":       attempt,
		})

		if attempt == maxAttempts {
			break
		}

		delay := e.policy.Backoff(attempt)
		e.deps.Logger.Debug("Retrying API request", map[string]interface{}{
			"request_id": requestID,
			"delay":      delay.String(),
			"next":       attempt + 1,
		})
		if err := e.sleep(ctx, delay); err != nil {
			break
		}
	}

	e.deps.Metrics.ObserveRequest(env.String(), false, time.Since(start))

	if last == nil {
		return domain.RequestResult{
			Kind:         domain.FailureUnknown,
			Error:        "Unknown error",
			Environment:  env,
			BaseURL:      baseURL,
			TokenPreview: preview,
			Attempts:     attempts,
		}, nil
	}

	last.Attempts = attempts
	return *last, nil
}

// attempt performs a single request and classifies it
func (e *Executor) attempt(ctx context.Context, target string, headers map[string]string, env domain.Environment) domain.RequestResult {
	resp, err := e.deps.HTTPClient.Get(ctx, target, headers)
	if err != nil {
		return domain.RequestResult{
			Kind:        domain.FailureNetwork,
			Error:       "Network error: " + err.Error(),
			Environment: env,
		}
	}

	body := resp.Body()
	defer body.Close()

	status := resp.StatusCode()
	data, err := io.ReadAll(body)
	if err != nil {
		return domain.RequestResult{
			Kind:        domain.FailureNetwork,
			StatusCode:  status,
			Error:       "Failed to read response body: " + err.Error(),
			Environment: env,
		}
	}

	switch status {
	case http.StatusOK:
		return domain.RequestResult{Success: true, Body: data, StatusCode: status}
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.RequestResult{
			Kind:       domain.FailureAuth,
			StatusCode: status,
			Error: fmt.Sprintf("Authentication failed (HTTP %d): the API token appears to be invalid or expired for environment '%s'",
				status, env),
			Environment: env,
		}
	default:
		// Non-auth 4xx statuses are retried like 5xx. A 404 will repeat on
		// every attempt; see DESIGN.md before changing this.
		return domain.RequestResult{
			Kind:        domain.FailureHTTP,
			StatusCode:  status,
			Error:       fmt.Sprintf("API request failed with status %d: %s", status, describeBody(status, data)),
			Environment: env,
		}
	}
}

// buildURL merges non-empty params into the query string of rawURL
func buildURL(rawURL string, params map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid request URL %q", rawURL)
	}

	if len(params) == 0 {
		return u.String(), nil
	}

	q := u.Query()
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func describeBody(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		if st := http.StatusText(status); st != "" {
			return st
		}
		return "no response body"
	}
	if len(text) > maxErrorBodyLength {
		text = text[:maxErrorBodyLength] + "..."
	}
	return text
}

func outcomeLabel(r domain.RequestResult) string {
	if r.Success {
		return "success"
	}
	switch r.Kind {
	case domain.FailureAuth:
		return "auth_error"
	case domain.FailureNetwork:
		return "network_error"
	default:
		return "http_error"
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
