// ABOUTME: Manager creates claim checkers and looks them up by ID
// ABOUTME: Each page instance gets its own checker so state is never shared between pages

package checker

import (
	"context"

	"fact-chex/core/errors"
	"fact-chex/core/interfaces"
	"fact-chex/pkg/featureflags"
	"github.com/google/uuid"
)

// Registry stores live checkers by ID
type Registry interface {
	// Put stores a checker under its ID
	Put(c *ClaimChecker)

	// Get returns the checker with the given ID, if any
	Get(id string) (*ClaimChecker, bool)

	// Delete removes a checker; deleting an unknown ID is not an error
	Delete(id string)

	// Count returns the number of live checkers
	Count() int
}

// Manager hands out checkers bound to one fact-check service
type Manager struct {
	registry    Registry
	factChecker interfaces.FactChecker
	logger      interfaces.Logger
	flags       featureflags.Manager
}

// NewManager creates a new checker manager
func NewManager(registry Registry, factChecker interfaces.FactChecker, logger interfaces.Logger, flags featureflags.Manager) *Manager {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Manager{
		registry:    registry,
		factChecker: factChecker,
		logger:      logger,
		flags:       flags,
	}
}

// Create starts a new checker in the Idle state
func (m *Manager) Create(ctx context.Context) *ClaimChecker {
	discard := true
	if m.flags != nil {
		discard = m.flags.IsEnabled(ctx, featureflags.DiscardStaleResults)
	}

	c := New(m.factChecker, WithLogger(m.logger), WithStaleDiscard(discard))
	m.registry.Put(c)

	m.logger.Debug("Checker created", map[string]interface{}{
		"checker_id":    c.ID(),
		"discard_stale": discard,
	})
	return c
}

// Get returns the checker with the given ID
func (m *Manager) Get(id string) (*ClaimChecker, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.ValidationError{Field: "id", Message: "invalid checker ID format"}
	}

	c, ok := m.registry.Get(id)
	if !ok {
		return nil, &errors.NotFoundError{Resource: "checker", ID: id}
	}
	return c, nil
}

// Delete discards a checker. Its pending requests still complete but
// nothing observes them.
func (m *Manager) Delete(id string) error {
	if _, err := m.Get(id); err != nil {
		return err
	}
	m.registry.Delete(id)
	return nil
}

// Count returns the number of live checkers
func (m *Manager) Count() int {
	return m.registry.Count()
}
