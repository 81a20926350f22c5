package interfaces

import "time"

// Metrics records request executor activity
type Metrics interface {
	// RecordAttempt counts one attempt against an environment.
	// outcome is one of success, auth_error, http_error, network_error.
	RecordAttempt(environment, outcome string)

	// ObserveRequest records the duration of a whole retry cycle
	ObserveRequest(environment string, success bool, duration time.Duration)
}

// NopMetrics discards everything
type NopMetrics struct{}

func (NopMetrics) RecordAttempt(string, string)                {}
func (NopMetrics) ObserveRequest(string, bool, time.Duration) {}
