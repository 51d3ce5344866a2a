// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads an optional .env file, then server, fact-check, limits and logging settings

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// FactCheck describes how to reach the fact-checking service
	FactCheck FactCheckConfig

	// Checkers controls the lifetime of page checkers
	Checkers CheckerConfig

	// RateLimit controls per-IP request limiting
	RateLimit RateLimitConfig

	// Log controls log level and format
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigins lists the browser origins allowed by CORS
	AllowedOrigins []string
}

// FactCheckConfig holds fact-checking service settings
type FactCheckConfig struct {
	// BaseURL is the service root; claims go to BaseURL + /fact-check
	BaseURL string

	// HTTPTimeout bounds each call at the transport; zero means no timeout
	HTTPTimeout time.Duration
}

// CheckerConfig holds checker registry settings
type CheckerConfig struct {
	// IdleTTL is how long an untouched checker is kept
	IdleTTL time.Duration
}

// RateLimitConfig holds rate limiter settings
type RateLimitConfig struct {
	// Requests is the number of requests allowed per Window
	Requests int

	// Window is the period the request budget refills over
	Window time.Duration
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first if present; real environment
// variables take precedence over it.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	timeout, err := getEnvAsDurationOrDefault("FACTCHECK_HTTP_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	idleTTL, err := getEnvAsDurationOrDefault("CHECKER_IDLE_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	window, err := getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			AllowedOrigins: strings.Fields(strings.ReplaceAll(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200"), ",", " ")),
		},
		FactCheck: FactCheckConfig{
			BaseURL:     getEnvOrDefault("FACTCHECK_BASE_URL", "http://127.0.0.1:8000"),
			HTTPTimeout: timeout,
		},
		Checkers: CheckerConfig{
			IdleTTL: idleTTL,
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 60),
			Window:   window,
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault parses a Go duration such as 30s or 5m
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.New("invalid duration for " + key + ": " + value)
	}
	return d, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("port cannot be empty"))
	}

	u, err := url.Parse(c.FactCheck.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, errors.New("fact-check base URL must be an absolute http(s) URL"))
	}

	if c.FactCheck.HTTPTimeout < 0 {
		errs = append(errs, errors.New("fact-check HTTP timeout cannot be negative"))
	}

	if c.Checkers.IdleTTL < 0 {
		errs = append(errs, errors.New("checker idle TTL cannot be negative"))
	}

	if c.RateLimit.Requests < 1 {
		errs = append(errs, errors.New("rate limit must be at least 1 request"))
	}

	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate window must be positive"))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, errors.New("log format must be 'text' or 'json'"))
	}

	return errors.Join(errs...)
}
