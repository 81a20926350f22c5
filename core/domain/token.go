// ABOUTME: Token verification result model
// ABOUTME: Reports credential validity per environment without exposing the credential

package domain

// TokenStatus is the verdict for one environment's credential
type TokenStatus struct {
	Environment  Environment `json:"environment"`
	Valid        bool        `json:"valid"`
	StatusCode   int         `json:"statusCode,omitempty"`
	Message      string      `json:"message,omitempty"`
	Note         string      `json:"note,omitempty"`
	BaseURL      string      `json:"baseUrl,omitempty"`
	TokenPreview string      `json:"tokenPreview,omitempty"`
}
