// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"context"

	"fact-chex/api/middleware"
	"fact-chex/core/interfaces"
	"fact-chex/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	Limiter        *middleware.RateLimiter
	AllowedOrigins []string
	Flags          featureflags.Manager
}

// DefaultAllowedOrigins is the local front-end dev server
var DefaultAllowedOrigins = []string{"http://localhost:4200"}

// NewAPI creates a Huma API without logging or rate limiting
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	// CORS must run before anything that can reject the request
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Window"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Limiter != nil && rateLimitEnabled(cfg.Flags) {
		router.Use(middleware.RateLimitMiddleware(cfg.Limiter))
	}

	config := huma.DefaultConfig("Fact-Chex API", "1.0.0")
	config.Info.Description = "Submit claims to the fact-checking service and follow each page's checker state"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func rateLimitEnabled(flags featureflags.Manager) bool {
	if flags == nil {
		return true
	}
	return flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled)
}
