// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: single-attempt net/http client; retries live in the executor
// - logger/logrus: logrus-backed logger, JSON or text
// - logger/zap: zap-backed logger, JSON
// - logger: field redaction and the stdout or rotating-file sink shared by both
// - metrics/prometheus: attempt counters, request latency and the /metrics handler
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://settings.example.com/setting/company/1", headers)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// Fields named token, authorization, password or secret are masked before
// they reach either backend:
//
//	log := logrus.New(logger.Output(os.Getenv("LOG_FILE")), "info", "json")
//	log.Info("Fetched settings", map[string]interface{}{
//	    "environment": "pd",
//	    "count":       12,
//	})
package infrastructure
