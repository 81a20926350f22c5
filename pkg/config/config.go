// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Layers defaults, an optional YAML file, .env files and the process environment

package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"settings-api/core/domain"
	"settings-api/core/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// API contains upstream settings API configuration
	API APIConfig `yaml:"api"`

	// Logging selects and tunes the logger backend
	Logging LoggingConfig `yaml:"logging"`

	// RateLimit bounds inbound requests per client IP
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Features configures feature flag lookup
	Features FeaturesConfig `yaml:"features"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`
}

// APIConfig holds upstream API configuration
type APIConfig struct {
	// Environments maps an environment tag (pd, in, ac) to its endpoint
	Environments map[string]EnvironmentConfig `yaml:"environments"`

	// TimeoutMS bounds each single attempt, in milliseconds
	TimeoutMS int `yaml:"timeout_ms"`

	Retry RetryConfig `yaml:"retry"`

	// ProbeCompanyID is the company queried by token verification
	ProbeCompanyID int `yaml:"probe_company_id"`
}

// EnvironmentConfig is the base URL and bearer token of one environment
type EnvironmentConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// RetryConfig holds the executor retry policy
type RetryConfig struct {
	MaxAttempts    int `yaml:"max_attempts"`
	InitialDelayMS int `yaml:"initial_delay_ms"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Backend is logrus or zap
	Backend string `yaml:"backend"`
	Level   string `yaml:"level"`

	// Format is json or text (text is logrus only)
	Format string `yaml:"format"`

	// File enables a rotating log file instead of stdout
	File string `yaml:"file"`
}

// RateLimitConfig holds per-IP rate limit configuration
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`

	// TrustProxy keys clients on X-Forwarded-For/X-Real-IP; set it only behind a proxy
	TrustProxy bool `yaml:"trust_proxy"`
}

// FeaturesConfig holds feature flag configuration
type FeaturesConfig struct {
	// Prefix is prepended to flag names when reading them from the environment
	Prefix string `yaml:"prefix"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000"},
		API: APIConfig{
			Environments: map[string]EnvironmentConfig{},
			TimeoutMS:    30000,
			Retry: RetryConfig{
				MaxAttempts:    3,
				InitialDelayMS: 250,
			},
			ProbeCompanyID: 1,
		},
		Logging: LoggingConfig{
			Backend: "logrus",
			Level:   "info",
			Format:  "json",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Features: FeaturesConfig{Prefix: "FEATURE_"},
	}
}

// Load builds the configuration from every source: defaults, then the YAML
// file named by CONFIG_FILE, then the environment. .env files are loaded into
// the environment first and never override variables that are already set.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFromFile loads configuration from defaults and a YAML file
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files, or ./.env when none are named.
// Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return &errors.ConfigurationError{Field: p, Message: "failed to load env file: " + err.Error()}
		}
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &errors.ConfigurationError{Field: path, Message: "failed to read config file: " + err.Error()}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &errors.ConfigurationError{Field: path, Message: "failed to parse config file: " + err.Error()}
	}
	if c.API.Environments == nil {
		c.API.Environments = map[string]EnvironmentConfig{}
	}
	return nil
}

// applyEnv overrides fields whose environment variables are set
func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)

	for _, env := range domain.Environments {
		prefix := "SETTINGS_API_" + strings.ToUpper(env.String())
		ec := c.API.Environments[env.String()]
		ec.URL = getEnvOrDefault(prefix+"_URL", ec.URL)
		ec.Token = getEnvOrDefault(prefix+"_TOKEN", ec.Token)
		if ec.URL != "" || ec.Token != "" {
			c.API.Environments[env.String()] = ec
		}
	}

	c.API.TimeoutMS = getEnvAsIntOrDefault("SETTINGS_API_TIMEOUT_MS", c.API.TimeoutMS)
	c.API.Retry.MaxAttempts = getEnvAsIntOrDefault("SETTINGS_API_MAX_ATTEMPTS", c.API.Retry.MaxAttempts)
	c.API.Retry.InitialDelayMS = getEnvAsIntOrDefault("SETTINGS_API_RETRY_DELAY_MS", c.API.Retry.InitialDelayMS)
	c.API.ProbeCompanyID = getEnvAsIntOrDefault("SETTINGS_API_PROBE_COMPANY_ID", c.API.ProbeCompanyID)

	c.Logging.Backend = getEnvOrDefault("LOG_BACKEND", c.Logging.Backend)
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", c.Logging.Format)
	c.Logging.File = getEnvOrDefault("LOG_FILE", c.Logging.File)

	c.RateLimit.RequestsPerSecond = getEnvAsFloatOrDefault("RATE_LIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = getEnvAsIntOrDefault("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustProxy = getEnvAsBoolOrDefault("RATE_LIMIT_TRUST_PROXY", c.RateLimit.TrustProxy)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Timeout returns the per-attempt timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}

// RetryDelay returns the backoff after the first failed attempt
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.API.Retry.InitialDelayMS) * time.Millisecond
}

// Endpoints returns a copy of the configured environments keyed by tag
func (c *Config) Endpoints() map[domain.Environment]domain.Endpoint {
	endpoints := make(map[domain.Environment]domain.Endpoint, len(c.API.Environments))
	for tag, ec := range c.API.Environments {
		endpoints[domain.Environment(tag)] = domain.Endpoint{BaseURL: ec.URL, Token: ec.Token}
	}
	return endpoints
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &errors.ConfigurationError{Field: "PORT", Message: "port cannot be empty"}
	}

	if len(c.API.Environments) == 0 {
		return &errors.ConfigurationError{Message: "no environment configured; set SETTINGS_API_<ENV>_URL and SETTINGS_API_<ENV>_TOKEN for at least one of pd, in, ac"}
	}

	for _, env := range domain.Environments {
		ec, ok := c.API.Environments[env.String()]
		if !ok {
			continue
		}
		field := "SETTINGS_API_" + strings.ToUpper(env.String())
		if ec.URL == "" {
			return &errors.ConfigurationError{Field: field + "_URL", Message: "base URL is required when a token is set"}
		}
		if ec.Token == "" {
			return &errors.ConfigurationError{Field: field + "_TOKEN", Message: "token is required when a base URL is set"}
		}
		u, err := url.Parse(ec.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &errors.ConfigurationError{Field: field + "_URL", Message: "base URL must be an absolute http or https URL"}
		}
	}

	for tag := range c.API.Environments {
		if !domain.Environment(tag).Valid() {
			return &errors.ConfigurationError{Field: "api.environments", Message: "unknown environment '" + tag + "'"}
		}
	}

	if c.API.TimeoutMS <= 0 {
		return &errors.ConfigurationError{Field: "SETTINGS_API_TIMEOUT_MS", Message: "timeout must be positive"}
	}
	if c.API.Retry.MaxAttempts < 1 {
		return &errors.ConfigurationError{Field: "SETTINGS_API_MAX_ATTEMPTS", Message: "at least one attempt is required"}
	}
	if c.API.Retry.InitialDelayMS < 0 {
		return &errors.ConfigurationError{Field: "SETTINGS_API_RETRY_DELAY_MS", Message: "retry delay cannot be negative"}
	}

	switch c.Logging.Backend {
	case "logrus", "zap":
	default:
		return &errors.ConfigurationError{Field: "LOG_BACKEND", Message: "log backend must be 'logrus' or 'zap'"}
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return &errors.ConfigurationError{Field: "LOG_FORMAT", Message: "log format must be 'json' or 'text'"}
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return &errors.ConfigurationError{Field: "RATE_LIMIT_RPS", Message: "rate limit must allow at least one request"}
	}

	return nil
}
