package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"settings-api/api/middleware"
	"settings-api/core/interfaces"
	"settings-api/pkg/featureflags"
)

func TestNewAPIWithMiddleware_ZeroConfig(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{})

	if api == nil {
		t.Error("NewAPIWithMiddleware returned nil API")
	}
	if router == nil {
		t.Error("NewAPIWithMiddleware returned nil router")
	}
}

func TestAPI_HasCorrectInfo(t *testing.T) {
	api, _ := NewAPIWithMiddleware(APIConfig{})

	info := api.OpenAPI().Info
	if info.Title != "Settings API" {
		t.Errorf("API title = %s, want Settings API", info.Title)
	}
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s, want application/vnd.oai.openapi+json", contentType)
	}
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Docs endpoint status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	req := httptest.NewRequest("OPTIONS", "/openapi.json", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func metricsStub() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "settings_api_attempts_total 1\n")
	})
}

func TestNewAPIWithMiddleware_MountsMetrics(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		Logger:         interfaces.NopLogger{},
		MetricsHandler: metricsStub(),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "settings_api_attempts_total") {
		t.Errorf("metrics body = %q", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("request logging middleware should set X-Request-ID")
	}
}

func TestNewAPIWithMiddleware_MetricsDisabledByFlag(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.MetricsEnabled: false,
	})
	_, router := NewAPIWithMiddleware(APIConfig{MetricsHandler: metricsStub(), Flags: flags})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("metrics status = %d, want 404 when disabled", w.Code)
	}
}

func TestNewAPIWithMiddleware_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.1, 1)
	defer limiter.Stop()

	_, router := NewAPIWithMiddleware(APIConfig{Limiter: limiter})

	first := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.RemoteAddr = "10.1.1.1:1000"
	router.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/openapi.json", nil)
	req.RemoteAddr = "10.1.1.1:1001"
	router.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestNewAPIWithMiddleware_RateLimitDisabledByFlag(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.1, 1)
	defer limiter.Stop()
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.RateLimitEnabled: false,
	})

	_, router := NewAPIWithMiddleware(APIConfig{Limiter: limiter, Flags: flags})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, w.Code)
		}
	}
}
