package config

import "time"

// SleeperConfig controls how we talk to the Sleeper API.
type SleeperConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
	Throttle    time.Duration
	MaxRetries  int
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Throttle:    durationEnvOrDefault(envThrottle, defaultThrottle),
		MaxRetries:  intEnvOrDefault(envMaxRetries, defaultMaxRetries),
	}
}
