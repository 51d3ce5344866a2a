// ABOUTME: In-memory checker registry backed by patrickmn/go-cache
// ABOUTME: Expires checkers that have not been touched for the idle TTL

package memory

import (
	"time"

	"fact-chex/core/checker"
	"fact-chex/core/interfaces"
	"github.com/patrickmn/go-cache"
)

// Registry implements checker.Registry in process memory.
// Every Get refreshes the entry's expiration, so only abandoned pages
// are evicted.
type Registry struct {
	items  *cache.Cache
	logger interfaces.Logger
}

// NewRegistry creates a registry that evicts checkers idle for longer than
// ttl. A zero ttl keeps checkers until they are deleted.
func NewRegistry(ttl time.Duration, logger interfaces.Logger) *Registry {
	expiration := ttl
	cleanup := ttl / 2
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}

	r := &Registry{
		items:  cache.New(expiration, cleanup),
		logger: logger,
	}
	r.items.OnEvicted(r.onEvicted)
	return r
}

// Put stores a checker under its ID
func (r *Registry) Put(c *checker.ClaimChecker) {
	r.items.Set(c.ID(), c, cache.DefaultExpiration)
}

// Get returns the checker with the given ID and refreshes its expiration
func (r *Registry) Get(id string) (*checker.ClaimChecker, bool) {
	value, ok := r.items.Get(id)
	if !ok {
		return nil, false
	}

	// Replace fails when a concurrent Delete won, so a refresh never
	// brings a removed checker back.
	c := value.(*checker.ClaimChecker)
	if err := r.items.Replace(id, c, cache.DefaultExpiration); err != nil {
		return nil, false
	}
	return c, true
}

// Delete removes a checker
func (r *Registry) Delete(id string) {
	r.items.Delete(id)
}

// Count returns the number of stored checkers, including expired ones
// not yet cleaned up
func (r *Registry) Count() int {
	return r.items.ItemCount()
}

// Flush removes all checkers
func (r *Registry) Flush() {
	r.items.Flush()
}

func (r *Registry) onEvicted(id string, value interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Debug("Checker removed from registry", map[string]interface{}{
		"checker_id": id,
	})
}
