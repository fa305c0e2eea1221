package domain

import "time"

// Transport defaults. They mirror the service's own client settings and
// can be overridden per config file.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = 1 * time.Second
)

// Config is the client configuration for one pantry session.
type Config struct {
	// BaseURL is the recipe service root, e.g. "https://api.example.com".
	BaseURL string

	// Timeout bounds each individual request attempt.
	Timeout time.Duration

	// Retries is the maximum number of attempts per logical request.
	Retries int

	// RetryDelay is the base backoff delay; attempt k waits RetryDelay × 2^(k-1).
	RetryDelay time.Duration

	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string

	// Debug enables request/response diagnostics on the transport client.
	Debug bool
}

// DefaultConfig returns a config with transport defaults applied and no
// service endpoint configured.
func DefaultConfig() *Config {
	return &Config{
		Timeout:    DefaultTimeout,
		Retries:    DefaultRetries,
		RetryDelay: DefaultRetryDelay,
	}
}
