// Package core contains the business logic of the settings API client.
// It is framework-agnostic and can be used independently of the HTTP API
// and the CLI.
//
// The core package is organized into several sub-packages:
//
// - domain: settings, environments, request results, pages and search matches
// - environment: maps pd, in and ac to a base URL and bearer token
// - executor: authenticated GET with retries and exponential backoff
// - normalizer: JSON and XML payloads into canonical settings
// - codec: base64 decoding of encoded, unencrypted values
// - pagination: line windows over a value
// - search: literal, case-insensitive line search with context
// - tokens: one probe per environment to check its credential
// - settings: list, value and search flows over the pieces above
// - errors: typed errors and Is* predicates
// - interfaces: contracts for HTTP, logging and metrics
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - A full credential never leaves the executor; results carry a masked preview
//
// # Usage Example
//
//	resolver := environment.NewResolver(map[domain.Environment]domain.Endpoint{
//	    domain.EnvironmentProduction: {BaseURL: "https://settings.example.com/api", Token: token},
//	})
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: standard.NewStandardHTTPClient(30 * time.Second),
//	    Logger:     myLogger,
//	}
//
//	exec := executor.NewExecutor(resolver, deps, executor.DefaultRetryPolicy())
//	service := settings.NewService(exec, myLogger)
//
//	list, err := service.List(ctx, settings.Query{
//	    Environment: domain.EnvironmentProduction,
//	    CompanyID:   "42",
//	})
package core
