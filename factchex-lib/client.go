// ABOUTME: Main client for the Fact-Chex library providing claim checks and checkers
// ABOUTME: Offers a clean API for using core functionality without HTTP hosting

package factchex

import (
	"context"
	"strings"
	"sync"
	"time"

	"fact-chex/core/checker"
	"fact-chex/core/factcheck"
	"fact-chex/core/interfaces"
	httpInfra "fact-chex/infrastructure/http/standard"
	"fact-chex/infrastructure/registry/memory"
	"fact-chex/pkg/featureflags"
)

// Client is the main entry point for the Fact-Chex library
type Client struct {
	service  *factcheck.Service
	manager  *checker.Manager
	registry *memory.Registry
	config   Config

	mu     sync.Mutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// BaseURL is the fact-check service root
	BaseURL string

	// Timeout bounds each call when the default HTTP client is used
	Timeout time.Duration

	// HTTPClient overrides the default HTTP client
	HTTPClient interfaces.HTTPClient

	// Logger receives checker and request logs
	Logger interfaces.Logger

	// DiscardStale drops results arriving after a modal was closed
	DiscardStale bool

	// CheckerTTL evicts idle checkers; zero keeps them until Close
	CheckerTTL time.Duration

	requestLogging bool
}

// NewClient creates a new Fact-Chex client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}
	if config.HTTPClient == nil {
		var opts []httpInfra.Option
		if config.requestLogging {
			opts = append(opts, httpInfra.WithTransport(httpInfra.NewLoggingRoundTripper(nil, config.Logger)))
		}
		config.HTTPClient = DefaultHTTPClient(config.Timeout, opts...)
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	service := factcheck.NewService(config.BaseURL, deps)
	registry := memory.NewRegistry(config.CheckerTTL, config.Logger)
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.DiscardStaleResults: config.DiscardStale,
	})

	return &Client{
		service:  service,
		manager:  checker.NewManager(registry, service, config.Logger, flags),
		registry: registry,
		config:   config,
	}, nil
}

// Close drops every checker. Requests still in flight complete unobserved.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.registry.Flush()
	return nil
}

// Endpoint returns the URL claims are posted to
func (c *Client) Endpoint() string {
	return c.service.Endpoint()
}

// Check submits a single claim and waits for the verdict. Unlike a
// Checker it reports failures as errors instead of a fallback result.
func (c *Client) Check(ctx context.Context, claim string) (*AnalysisResult, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(claim) == "" {
		return nil, ErrBlankClaim
	}

	outcome := c.service.Check(ctx, claim)
	if !outcome.OK() {
		return nil, fromCore(outcome.Err)
	}
	return outcome.Result, nil
}

// Ping reports whether the fact-check service answers on its root
func (c *Client) Ping(ctx context.Context) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	return fromCore(c.service.Probe(ctx))
}

// NewChecker creates an idle checker, independent of all others
func (c *Client) NewChecker(ctx context.Context) (*Checker, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return c.manager.Create(ctx), nil
}

// Checker looks up a checker created by this client
func (c *Client) Checker(id string) (*Checker, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	ch, err := c.manager.Get(id)
	return ch, fromCore(err)
}

// RemoveChecker discards a checker
func (c *Client) RemoveChecker(id string) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	return fromCore(c.manager.Delete(id))
}

func (c *Client) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}
