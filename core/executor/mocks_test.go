package executor

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"settings-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return &mockResponse{statusCode: 200}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// mockLogger records every log line
type mockLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, logEntry{Level: level, Message: msg, Fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

// mockMetrics counts recorded outcomes
type mockMetrics struct {
	attempts     map[string]int
	observations []bool
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{attempts: make(map[string]int)}
}

func (m *mockMetrics) RecordAttempt(environment, outcome string) {
	m.attempts[environment+"/"+outcome]++
}

func (m *mockMetrics) ObserveRequest(environment string, success bool, duration time.Duration) {
	m.observations = append(m.observations, success)
}

// recordingSleeper captures backoff delays instead of waiting
type recordingSleeper struct {
	delays  []time.Duration
	ctxErrs []error
	err     error
}

func (s *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	return s.err
}
