// ABOUTME: Request result model returned by the request executor
// ABOUTME: A discriminated success/failure value that never carries a full credential

package domain

// FailureKind classifies why a request failed
type FailureKind string

const (
	// FailureAuth is a 401/403 response
	FailureAuth FailureKind = "auth"

	// FailureHTTP is any other non-200 response
	FailureHTTP FailureKind = "http"

	// FailureNetwork is a transport error with no response
	FailureNetwork FailureKind = "network"

	// FailureUnknown is reported when no attempt produced an outcome
	FailureUnknown FailureKind = "unknown"
)

// RequestResult is the outcome of one executor call.
// When Success is true only Body, StatusCode and Attempts are meaningful.
type RequestResult struct {
	Success    bool
	Body       []byte
	StatusCode int
	Attempts   int

	// Failure details
	Kind         FailureKind
	Error        string
	Environment  Environment
	BaseURL      string
	TokenPreview string
}
