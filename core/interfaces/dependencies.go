// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient provides single-attempt HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records request activity. Optional.
	Metrics Metrics
}

// WithDefaults fills optional collaborators with no-op implementations
func (d Dependencies) WithDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = NopLogger{}
	}
	if d.Metrics == nil {
		d.Metrics = NopMetrics{}
	}
	return d
}
