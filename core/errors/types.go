// ABOUTME: Custom error types for the settings API core
// ABOUTME: Encodes the configuration/authentication/transient/parse/decode taxonomy

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"settings-api/core/domain"
)

// ConfigurationError reports missing or malformed environment-derived settings
type ConfigurationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
	return fmt.Sprintf("configuration error on '%s': %s", e.Field, e.Message)
}

// AuthenticationError represents a 401/403 from the upstream API
type AuthenticationError struct {
	Environment  domain.Environment
	StatusCode   int
	TokenPreview string
	Message      string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return e.Message
}

// TransientError represents a 5xx or network-level failure that survived retries
type TransientError struct {
	Environment domain.Environment
	StatusCode  int
	Message     string
}

// Error implements the error interface
func (e *TransientError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transient failure in environment '%s': %s", e.Environment, e.Message)
	}
	return fmt.Sprintf("transient failure in environment '%s' (status %d): %s", e.Environment, e.StatusCode, e.Message)
}

// ParseError represents a malformed or unrecognized payload
type ParseError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "Failed to parse API response: " + e.Reason
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// DecodeError is a failed best-effort value decode. It never leaves the codec.
type DecodeError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode value of setting '%s': %v", e.Key, e.Err)
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-auth, non-transient error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// FromResult maps a failed request result onto the error taxonomy.
// Returns nil for successful results.
func FromResult(result domain.RequestResult) error {
	if result.Success {
		return nil
	}

	switch {
	case result.StatusCode == http.StatusUnauthorized || result.StatusCode == http.StatusForbidden:
		return &AuthenticationError{
			Environment:  result.Environment,
			StatusCode:   result.StatusCode,
			TokenPreview: result.TokenPreview,
			Message:      result.Error,
		}
	case result.StatusCode == 0 || result.StatusCode >= 500:
		return &TransientError{
			Environment: result.Environment,
			StatusCode:  result.StatusCode,
			Message:     result.Error,
		}
	default:
		return &ExternalAPIError{
			StatusCode: result.StatusCode,
			Message:    result.Error,
			API:        "settings-" + result.Environment.String(),
		}
	}
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsTransient checks if an error is a TransientError
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
