// ABOUTME: Token verification and health handlers for the Huma API
// ABOUTME: Reports per-environment credential validity and service liveness

package handlers

import (
	"context"
	"net/http"

	"settings-api/api/dto/mappers"
	"settings-api/api/dto/responses"
	"settings-api/core/domain"
	"settings-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// TokenVerifier probes every environment's credential
type TokenVerifier interface {
	Verify(ctx context.Context) []domain.TokenStatus
}

// EnvironmentLister reports which environments are configured
type EnvironmentLister interface {
	Configured() []domain.Environment
}

// TokenHandler handles token verification and health requests
type TokenHandler struct {
	verifier     TokenVerifier
	environments EnvironmentLister
	flags        featureflags.Manager
}

// NewTokenHandler creates a new token handler. flags may be nil.
func NewTokenHandler(verifier TokenVerifier, environments EnvironmentLister, flags featureflags.Manager) *TokenHandler {
	return &TokenHandler{
		verifier:     verifier,
		environments: environments,
		flags:        flags,
	}
}

// RegisterRoutes registers token and health routes
func (h *TokenHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "verifyTokens",
		Method:      http.MethodGet,
		Path:        "/v1/tokens/verify",
		Summary:     "Verify API tokens",
		Description: "Probes each environment once. A rejected token (401/403) is invalid; an unreachable endpoint is reported valid with a note.",
		Tags:        []string{"Tokens"},
	}, h.VerifyTokens)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// VerifyTokensOutput defines the output for the VerifyTokens operation
type VerifyTokensOutput struct {
	Body responses.TokenVerificationResponse
}

// VerifyTokens handles GET /v1/tokens/verify
func (h *TokenHandler) VerifyTokens(ctx context.Context, input *struct{}) (*VerifyTokensOutput, error) {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.TokenVerificationEnabled) {
		return nil, huma.Error404NotFound("token verification is disabled")
	}

	statuses := h.verifier.Verify(ctx)
	return &VerifyTokensOutput{Body: *mappers.ToTokenVerificationResponse(statuses)}, nil
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *TokenHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	envs := []string{}
	if h.environments != nil {
		for _, env := range h.environments.Configured() {
			envs = append(envs, env.String())
		}
	}

	return &HealthOutput{Body: responses.HealthResponse{Status: "ok", Environments: envs}}, nil
}
