package sleeper

import "time"

// ProviderName identifies this client in logs and metrics.
const ProviderName = "sleeper"

const (
	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 20 * time.Second
	defaultUserAgent   = "sleeper-log/1.0"

	// sport is fixed: Sleeper scopes state, players, and league listings by
	// sport and this tool only does fantasy football.
	sport = "nfl"

	errorBodyLimit = 512
)
