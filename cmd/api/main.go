// ABOUTME: Main entry point for the Fact-Chex API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fact-chex/api"
	"fact-chex/api/handlers"
	"fact-chex/api/middleware"
	"fact-chex/api/views"
	"fact-chex/core/checker"
	"fact-chex/core/factcheck"
	"fact-chex/core/interfaces"
	stdhttp "fact-chex/infrastructure/http/standard"
	"fact-chex/infrastructure/logger/structured"
	"fact-chex/infrastructure/registry/memory"
	"fact-chex/pkg/config"
	"fact-chex/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Starting Fact-Chex API", map[string]interface{}{
		"port":              cfg.Server.Port,
		"factcheck_url":     cfg.FactCheck.BaseURL,
		"factcheck_timeout": cfg.FactCheck.HTTPTimeout.String(),
		"checker_idle_ttl":  cfg.Checkers.IdleTTL.String(),
		"flags":             flags.GetAllFlags(),
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.FactCheck.HTTPTimeout,
		stdhttp.WithTransport(stdhttp.NewLoggingRoundTripper(nil, logger)),
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	factCheckService := factcheck.NewService(cfg.FactCheck.BaseURL, deps)
	registry := memory.NewRegistry(cfg.Checkers.IdleTTL, logger)
	manager := checker.NewManager(registry, factCheckService, logger, flags)

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Create API with middleware
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	stopSweeper := make(chan struct{})
	go limiter.RunSweeper(stopSweeper)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		Limiter:        limiter,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Flags:          flags,
	})

	// Create and register handlers
	handlers.NewCheckerHandler(manager, renderer).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(factCheckService, manager).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address":  srv.Addr,
			"endpoint": factCheckService.Endpoint(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)
	close(stopSweeper)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", map[string]interface{}{
		"live_checkers": manager.Count(),
	})
}

func init() {
	// Print banner
	fmt.Println(`
    ______           __        ________
   / ____/___ ______/ /_      / ____/ /_  ___  _  __
  / /_  / __ '/ ___/ __/_____/ /   / __ \/ _ \| |/_/
 / __/ / /_/ / /__/ /_/_____/ /___/ / / /  __/>  <
/_/    \__,_/\___/\__/      \____/_/ /_/\___/_/|_|
	`)
}
