// ABOUTME: ClaimChecker owns one page's UI state and talks to the fact-checking service
// ABOUTME: Every mutation goes through Reduce under a single lock; requests resolve asynchronously

package checker

import (
	"context"
	"sync"

	"fact-chex/core/domain"
	"fact-chex/core/interfaces"
	"github.com/google/uuid"
)

// ClaimChecker holds the state of a single claim checker instance.
//
// Search returns as soon as the modal is open and the request is on its
// way; the response is applied later from the request goroutine. Requests
// are never retried, cancelled or deduplicated, so when several are in
// flight the one that arrives last decides the displayed result.
type ClaimChecker struct {
	id           string
	factChecker  interfaces.FactChecker
	logger       interfaces.Logger
	discardStale bool

	mu    sync.Mutex
	state domain.State

	// session is bumped by CloseModal; completions started in an older
	// session are stale.
	session uint64

	// pending counts requests started in the current session
	pending  int
	inflight int
	idle     chan struct{}
}

// Option configures a ClaimChecker
type Option func(*ClaimChecker)

// WithID sets the checker ID instead of generating one
func WithID(id string) Option {
	return func(c *ClaimChecker) {
		c.id = id
	}
}

// WithLogger sets the logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *ClaimChecker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStaleDiscard controls whether results arriving after CloseModal are
// dropped. With it disabled a late result is written into the closed
// modal's slot.
func WithStaleDiscard(enabled bool) Option {
	return func(c *ClaimChecker) {
		c.discardStale = enabled
	}
}

// New creates a claim checker in the Idle state
func New(factChecker interfaces.FactChecker, opts ...Option) *ClaimChecker {
	idle := make(chan struct{})
	close(idle)

	c := &ClaimChecker{
		id:           uuid.New().String(),
		factChecker:  factChecker,
		logger:       nopLogger{},
		discardStale: true,
		idle:         idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the checker's identifier
func (c *ClaimChecker) ID() string {
	return c.id
}

// State returns a snapshot of the current state
func (c *ClaimChecker) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SetQuery replaces the search query
func (c *ClaimChecker) SetQuery(query string) domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, QueryChanged{Query: query})
	return c.state.Clone()
}

// Search submits the current query. A blank query is ignored. Otherwise
// the returned state already has the modal open and loading set.
func (c *ClaimChecker) Search() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := c.state.SearchQuery
	if !CanSearch(query) {
		return c.state.Clone()
	}

	c.state = Reduce(c.state, SearchStarted{})
	session := c.session
	c.pending++
	if c.inflight == 0 {
		c.idle = make(chan struct{})
	}
	c.inflight++

	c.logger.Debug("Submitting claim", map[string]interface{}{
		"checker_id": c.id,
		"claim":      query,
	})

	go func() {
		outcome := c.factChecker.Check(context.Background(), query)
		c.resolve(session, outcome)
	}()

	return c.state.Clone()
}

// CloseModal hides the modal and clears the result. Pending requests keep
// running.
func (c *ClaimChecker) CloseModal() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ModalClosed{})
	c.session++
	c.pending = 0
	return c.state.Clone()
}

// Wait blocks until no request is in flight or ctx is done
func (c *ClaimChecker) Wait(ctx context.Context) error {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InFlight returns the number of requests that have not resolved yet
func (c *ClaimChecker) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}

// resolve is the single point where request completions reach the state
func (c *ClaimChecker) resolve(session uint64, outcome interfaces.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer func() {
		c.inflight--
		if c.inflight == 0 {
			close(c.idle)
		}
	}()

	if outcome.OK() {
		c.logger.Info("Fact-check response received", map[string]interface{}{
			"checker_id": c.id,
			"verdict":    outcome.Result.Verdict,
			"score":      outcome.Result.Score,
		})
	} else {
		fields := map[string]interface{}{"checker_id": c.id}
		if outcome.Err != nil {
			fields["error"] = outcome.Err.Error()
		}
		c.logger.Error("Fact-check request failed", fields)
	}

	if session != c.session {
		if c.discardStale {
			c.logger.Debug("Discarding result that arrived after the modal was closed", map[string]interface{}{
				"checker_id": c.id,
			})
			if c.pending == 0 {
				c.state = Reduce(c.state, SearchDiscarded{})
			}
			return
		}
		c.logger.Warn("Applying result that arrived after the modal was closed", map[string]interface{}{
			"checker_id": c.id,
		})
	} else {
		c.pending--
	}

	c.state = Reduce(c.state, SearchResolved{Outcome: outcome})
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
