package config

import "time"

const (
	envLeagueID     = "LEAGUE_ID"
	envBaseURL      = "SLEEPER_BASE_URL"
	envHTTPTimeout  = "SLEEPER_HTTP_TIMEOUT"
	envThrottle     = "SLEEPER_THROTTLE"
	envMaxRetries   = "SLEEPER_MAX_RETRIES"
	envReportOut    = "REPORT_OUT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envTelemetryOn  = "TELEMETRY_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 20 * Duration(time.Second)
	// Pause between sequential API calls; Sleeper asks clients to stay under
	// 1000 calls/min, this keeps a casual report run far below that.
	defaultThrottle   = 150 * Duration(time.Millisecond)
	defaultMaxRetries = 3
	defaultReportOut  = "sleeper_log.html"
)
