// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"context"
	"net/http"

	"settings-api/api/middleware"
	"settings-api/core/interfaces"
	"settings-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "Settings API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Limiter is owned by the caller, who must Stop it on shutdown
	Limiter *middleware.RateLimiter

	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler

	Flags featureflags.Manager
}

func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Burst", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Read-only access to company settings across the pd, in and ac environments"
	return config
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// A zero APIConfig yields a bare API with CORS only.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflights never hit the limiter
	router.Use(corsHandler())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Limiter != nil && enabled(cfg.Flags, featureflags.RateLimitEnabled) {
		router.Use(middleware.RateLimitMiddleware(cfg.Limiter))
	}

	if cfg.MetricsHandler != nil && enabled(cfg.Flags, featureflags.MetricsEnabled) {
		router.Handle("/metrics", cfg.MetricsHandler)
	}

	// OpenAPI is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, humaConfig())

	return api, router
}

func enabled(flags featureflags.Manager, flag featureflags.FeatureFlag) bool {
	if flags == nil {
		return true
	}
	return flags.IsEnabled(context.Background(), flag)
}
