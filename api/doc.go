// Package api provides the HTTP API layer for the settings service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, request IDs and per-IP rate limiting
//
// # Routes
//
//	GET /v1/environments/{env}/companies/{companyId}/settings
//	GET /v1/environments/{env}/companies/{companyId}/settings/{key}/value?limit=&offset=
//	GET /v1/environments/{env}/companies/{companyId}/settings/{key}/search?term=&context-lines=
//	GET /v1/tokens/verify
//	GET /health
//	GET /metrics
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(10, 20)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:         logger,
//	    Limiter:        limiter,
//	    MetricsHandler: metrics.Handler(),
//	    Flags:          flags,
//	})
//
//	handlers.NewSettingsHandler(service, flags).RegisterRoutes(humaAPI)
//	handlers.NewTokenHandler(verifier, resolver, flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Validation errors map to 400,
// missing settings to 404, and upstream authentication or parse failures
// to 502. Transient upstream failures map to 503.
package api
