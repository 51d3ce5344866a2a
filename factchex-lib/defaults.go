// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the HTTP client and loggers

package factchex

import (
	"io"
	"time"

	"fact-chex/core/interfaces"
	httpInfra "fact-chex/infrastructure/http/standard"
	"fact-chex/infrastructure/logger/structured"
)

// DefaultHTTPClient creates the HTTP client used to reach the fact-check
// service. A zero timeout leaves requests unbounded.
func DefaultHTTPClient(timeout time.Duration, opts ...httpInfra.Option) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout, opts...)
}

// DefaultLogger creates a default logger that writes text to stdout
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: "info"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: "error", Output: io.Discard})
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithRequestLogging wraps the HTTP client's transport so each fact-check
// call is logged at debug level
func WithRequestLogging() Option {
	return func(c *Config) error {
		c.requestLogging = true
		return nil
	}
}
