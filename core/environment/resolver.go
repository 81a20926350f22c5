// ABOUTME: Environment resolver maps an environment tag to its base URL and credential
// ABOUTME: Pure lookup over a read-only endpoint table built once at startup

package environment

import (
	"strings"

	"settings-api/core/domain"
	"settings-api/core/errors"
)

// Resolver resolves environment tags against a fixed endpoint table.
// The table is copied on construction and never mutated afterwards, so a
// single Resolver is safe for concurrent use.
type Resolver struct {
	endpoints map[domain.Environment]domain.Endpoint
}

// NewResolver creates a resolver over a copy of endpoints.
// A nil map yields a resolver that reports configuration as never loaded.
func NewResolver(endpoints map[domain.Environment]domain.Endpoint) *Resolver {
	if endpoints == nil {
		return &Resolver{}
	}

	table := make(map[domain.Environment]domain.Endpoint, len(endpoints))
	for env, ep := range endpoints {
		ep.BaseURL = strings.TrimSuffix(ep.BaseURL, "/")
		table[env] = ep
	}
	return &Resolver{endpoints: table}
}

// Resolve returns the base URL and credential for env
func (r *Resolver) Resolve(env domain.Environment) (string, string, error) {
	if r == nil || r.endpoints == nil {
		return "", "", &errors.ConfigurationError{Message: "configuration was never loaded"}
	}

	if !env.Valid() {
		return "", "", &errors.ConfigurationError{
			Field:   "environment",
			Message: "unknown environment '" + env.String() + "' (expected pd, in or ac)",
		}
	}

	ep, ok := r.endpoints[env]
	if !ok || ep.BaseURL == "" || ep.Token == "" {
		return "", "", &errors.ConfigurationError{
			Field:   "environment",
			Message: "no base URL and token configured for environment '" + env.String() + "'",
		}
	}

	return ep.BaseURL, ep.Token, nil
}

// Configured lists the environments that have a complete endpoint, in probe order
func (r *Resolver) Configured() []domain.Environment {
	var envs []domain.Environment
	for _, env := range domain.Environments {
		if _, _, err := r.Resolve(env); err == nil {
			envs = append(envs, env)
		}
	}
	return envs
}
