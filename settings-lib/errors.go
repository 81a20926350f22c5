// ABOUTME: Error types and handling for the settings library
// ABOUTME: Wraps core failures into one structured error with a stable type

package settingsapi

import (
	stderrors "errors"
	"fmt"

	coreerrors "settings-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a setting was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates a transient network or server failure
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeAuthentication indicates a rejected credential
	ErrorTypeAuthentication ErrorType = "authentication"

	// ErrorTypeUpstream indicates any other non-200 upstream response
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeParsing indicates a malformed payload
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// wrapError classifies a core error. The core error stays reachable via errors.As.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var errType ErrorType
	switch {
	case coreerrors.IsValidation(err):
		errType = ErrorTypeValidation
	case coreerrors.IsNotFound(err):
		errType = ErrorTypeNotFound
	case coreerrors.IsAuthentication(err):
		errType = ErrorTypeAuthentication
	case coreerrors.IsTransient(err):
		errType = ErrorTypeNetwork
	case coreerrors.IsExternalAPI(err):
		errType = ErrorTypeUpstream
	case coreerrors.IsParse(err):
		errType = ErrorTypeParsing
	case coreerrors.IsConfiguration(err):
		errType = ErrorTypeConfiguration
	default:
		errType = ErrorTypeInternal
	}

	return NewError(errType, err.Error()).WithCause(err)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsAuthenticationError checks if an error is an authentication error
func IsAuthenticationError(err error) bool {
	return isType(err, ErrorTypeAuthentication)
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return isType(err, ErrorTypeParsing)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
