package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for a report run.
type Config struct {
	LeagueID  string
	ReportOut string
	Sleeper   SleeperConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// TelemetryConfig controls the optional OTLP metrics push.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		LeagueID:  envOrDefault(envLeagueID, ""),
		ReportOut: envOrDefault(envReportOut, defaultReportOut),
		Sleeper:   loadSleeper(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
		Telemetry: loadTelemetry(),
	}
}

func loadTelemetry() TelemetryConfig {
	endpoint := envOrDefault(envOtelEndpoint, "")
	return TelemetryConfig{
		Enabled:      boolEnvOrDefault(envTelemetryOn, endpoint != ""),
		ServiceName:  envOrDefault(envOtelService, "sleeper-log"),
		OtlpEndpoint: endpoint,
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
