// ABOUTME: serve subcommand wires the core services into the Huma API
// ABOUTME: Starts the HTTP server and shuts it down gracefully on SIGINT/SIGTERM

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"settings-api/api"
	"settings-api/api/handlers"
	"settings-api/api/middleware"
	"settings-api/core/environment"
	"settings-api/core/executor"
	"settings-api/core/interfaces"
	"settings-api/core/settings"
	"settings-api/core/tokens"
	"settings-api/pkg/featureflags"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settings HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.sync()

			if port != "" {
				a.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, a *app) error {
	deps := interfaces.Dependencies{
		HTTPClient: a.httpClient,
		Logger:     a.logger,
		Metrics:    a.metrics,
	}

	resolver := environment.NewResolver(a.cfg.Endpoints())
	exec := executor.NewExecutor(resolver, deps, executor.RetryPolicy{
		MaxAttempts:  a.cfg.API.Retry.MaxAttempts,
		InitialDelay: a.cfg.RetryDelay(),
	})
	service := settings.NewService(exec, a.logger)
	verifier := tokens.NewVerifier(exec, a.logger, a.cfg.API.ProbeCompanyID)
	flags := featureflags.NewEnvManager(a.cfg.Features.Prefix)

	limiter := middleware.NewRateLimiter(a.cfg.RateLimit.RequestsPerSecond, a.cfg.RateLimit.Burst).
		TrustProxyHeaders(a.cfg.RateLimit.TrustProxy)
	defer limiter.Stop()

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         a.logger,
		Limiter:        limiter,
		MetricsHandler: a.metrics.Handler(),
		Flags:          flags,
	})

	handlers.NewSettingsHandler(service, flags).RegisterRoutes(humaAPI)
	handlers.NewTokenHandler(verifier, resolver, flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: a.cfg.Timeout()*time.Duration(a.cfg.API.Retry.MaxAttempts) + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", map[string]interface{}{
			"address":      srv.Addr,
			"environments": resolver.Configured(),
			"version":      version,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("HTTP server error", map[string]interface{}{"error": err.Error()})
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]interface{}{"error": err.Error()})
		return err
	}

	a.logger.Info("Server stopped", nil)
	return nil
}
