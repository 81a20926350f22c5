// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"settings-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsConfiguration(err):
		return huma.Error500InternalServerError("configuration error", err)
	case errors.IsAuthentication(err):
		return huma.Error502BadGateway(err.Error())
	case errors.IsTransient(err):
		return huma.Error503ServiceUnavailable("Settings API unavailable", err)
	case errors.IsParse(err):
		return huma.Error502BadGateway(err.Error())
	case errors.IsExternalAPI(err):
		return huma.Error502BadGateway("Settings API request failed", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
