// ABOUTME: Token verifier probes every environment once and classifies its credential
// ABOUTME: A rejected credential is invalid; an unreachable endpoint is not

package tokens

import (
	"context"
	"fmt"
	"strconv"

	"settings-api/core/domain"
	"settings-api/core/executor"
	"settings-api/core/interfaces"
)

const (
	// DefaultProbeCompanyID is the company queried by the probe request
	DefaultProbeCompanyID = 1

	// ProbeKeyName narrows the probe to a key that is not expected to exist
	ProbeKeyName = "token-verification-probe"

	unreachableNote = "Endpoint could not be reached; this does not mean the token is invalid"
)

// Verifier checks the credential of each environment with a single probe request
type Verifier struct {
	executor       *executor.Executor
	logger         interfaces.Logger
	probeCompanyID int
}

// NewVerifier creates a verifier that probes through exec
func NewVerifier(exec *executor.Executor, logger interfaces.Logger, probeCompanyID int) *Verifier {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	if probeCompanyID <= 0 {
		probeCompanyID = DefaultProbeCompanyID
	}
	return &Verifier{
		executor:       exec,
		logger:         logger,
		probeCompanyID: probeCompanyID,
	}
}

// Verify probes pd, in and ac in that order and reports one status each
func (v *Verifier) Verify(ctx context.Context) []domain.TokenStatus {
	statuses := make([]domain.TokenStatus, 0, len(domain.Environments))
	for _, env := range domain.Environments {
		statuses = append(statuses, v.VerifyEnvironment(ctx, env))
	}
	return statuses
}

// VerifyEnvironment probes a single environment
func (v *Verifier) VerifyEnvironment(ctx context.Context, env domain.Environment) domain.TokenStatus {
	baseURL, token, err := v.executor.Resolver().Resolve(env)
	if err != nil {
		return domain.TokenStatus{Environment: env, Valid: false, Message: err.Error()}
	}

	status := domain.TokenStatus{
		Environment:  env,
		BaseURL:      baseURL,
		TokenPreview: domain.MaskToken(token),
	}

	probeURL := baseURL + "/setting/company/" + strconv.Itoa(v.probeCompanyID)
	result, err := v.executor.Execute(ctx, probeURL, map[string]string{"key-name": ProbeKeyName}, env,
		&executor.Options{MaxAttempts: 1})
	if err != nil {
		status.Message = err.Error()
		return status
	}

	status.StatusCode = result.StatusCode
	status.Valid, status.Message, status.Note = classify(result)

	v.logger.Info("Token verification completed", map[string]interface{}{
		"environment":   env.String(),
		"valid":         status.Valid,
		"status":        status.StatusCode,
		"token_preview": status.TokenPreview,
	})
	return status
}

func classify(result domain.RequestResult) (valid bool, message, note string) {
	switch {
	case result.Success:
		return true, "Token is valid", ""
	case result.Kind == domain.FailureAuth:
		return false, result.Error, ""
	case result.Kind == domain.FailureNetwork:
		return true, "Token could not be checked", unreachableNote + ": " + result.Error
	default:
		return true, fmt.Sprintf("Token accepted (HTTP %d)", result.StatusCode), ""
	}
}
