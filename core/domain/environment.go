// ABOUTME: Environment domain model for the three deployment targets of the settings API
// ABOUTME: Defines environment tags, endpoints, and the masked credential preview

package domain

import "fmt"

// Environment is a deployment target tag
type Environment string

const (
	// EnvironmentProduction is the production deployment
	EnvironmentProduction Environment = "pd"

	// EnvironmentIntegration is the integration deployment
	EnvironmentIntegration Environment = "in"

	// EnvironmentAcceptance is the acceptance deployment
	EnvironmentAcceptance Environment = "ac"
)

// Environments lists all known environments in probe order
var Environments = []Environment{
	EnvironmentProduction,
	EnvironmentIntegration,
	EnvironmentAcceptance,
}

// ParseEnvironment validates an environment tag
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(s)
	if !env.Valid() {
		return "", fmt.Errorf("unknown environment %q (expected pd, in or ac)", s)
	}
	return env, nil
}

// Valid reports whether the environment is one of the known tags
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentProduction, EnvironmentIntegration, EnvironmentAcceptance:
		return true
	}
	return false
}

// String returns the environment tag
func (e Environment) String() string {
	return string(e)
}

// Endpoint is the base URL and bearer credential of one environment
type Endpoint struct {
	BaseURL string
	Token   string
}

const tokenPreviewLength = 10

// MaskToken returns the first 10 characters of a credential followed by an ellipsis
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	runes := []rune(token)
	if len(runes) > tokenPreviewLength {
		runes = runes[:tokenPreviewLength]
	}
	return string(runes) + "..."
}
