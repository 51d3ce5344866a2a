// ABOUTME: Configuration options for the Fact-Chex library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package factchex

import (
	"time"

	"fact-chex/core/factcheck"
	"fact-chex/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithBaseURL sets the fact-check service root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base URL is empty")
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithTimeout bounds each fact-check call. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return NewError(ErrorTypeConfiguration, "timeout is negative").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client. The timeout option is ignored
// when one is given.
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithStaleDiscard controls whether checkers drop results that arrive
// after their modal was closed
func WithStaleDiscard(enabled bool) Option {
	return func(c *Config) error {
		c.DiscardStale = enabled
		return nil
	}
}

// WithCheckerTTL evicts checkers untouched for longer than ttl.
// Zero keeps them until Close.
func WithCheckerTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.CheckerTTL = ttl
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:      factcheck.DefaultBaseURL,
		Timeout:      0,
		DiscardStale: true,
		CheckerTTL:   0,
	}
}
