// ABOUTME: Composition root shared by every settingsctl command
// ABOUTME: Builds logger, metrics and HTTP client from configuration

package main

import (
	"io"
	"net/http"

	"settings-api/api/middleware"
	coreerrors "settings-api/core/errors"
	"settings-api/core/interfaces"
	"settings-api/infrastructure/http/standard"
	"settings-api/infrastructure/logger"
	logruslogger "settings-api/infrastructure/logger/logrus"
	zaplogger "settings-api/infrastructure/logger/zap"
	"settings-api/infrastructure/metrics/prometheus"
	"settings-api/pkg/config"
	settingsapi "settings-api/settings-lib"

	jsoniter "github.com/json-iterator/go"
)

var jsonOut = jsoniter.ConfigCompatibleWithStandardLibrary

// app holds the collaborators built from configuration
type app struct {
	cfg        *config.Config
	logger     interfaces.Logger
	metrics    *prometheus.Metrics
	httpClient interfaces.HTTPClient
	sync       func()
}

// loadApp reads and validates configuration, then builds the ambient stack
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, coreerrors.WrapError(err, "load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, coreerrors.WrapError(err, "invalid configuration")
	}

	log, sync := newLogger(cfg.Logging)

	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    log,
	}

	return &app{
		cfg:        cfg,
		logger:     log,
		metrics:    prometheus.New(),
		httpClient: standard.NewStandardHTTPClientWithTransport(cfg.Timeout(), transport),
		sync:       sync,
	}, nil
}

func newLogger(cfg config.LoggingConfig) (interfaces.Logger, func()) {
	out := logger.Output(cfg.File)
	if cfg.Backend == "zap" {
		l := zaplogger.New(out, cfg.Level)
		return l, func() { _ = l.Sync() }
	}
	return logruslogger.New(out, cfg.Level, cfg.Format), func() {}
}

// client builds the library client over the shared stack
func (a *app) client() (*settingsapi.Client, error) {
	return settingsapi.NewClient(
		settingsapi.WithHTTPClient(a.httpClient),
		settingsapi.WithLogger(a.logger),
		settingsapi.WithMetrics(a.metrics),
		settingsapi.WithEndpoints(a.cfg.Endpoints()),
		settingsapi.WithRetry(a.cfg.API.Retry.MaxAttempts, a.cfg.RetryDelay()),
		settingsapi.WithProbeCompanyID(a.cfg.API.ProbeCompanyID),
	)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := jsonOut.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
