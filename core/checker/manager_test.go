package checker

import (
	"context"
	"sync"
	"testing"

	"fact-chex/core/errors"
	"fact-chex/pkg/featureflags"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRegistry struct {
	mu       sync.Mutex
	checkers map[string]*ClaimChecker
}

func newMapRegistry() *mapRegistry {
	return &mapRegistry{checkers: make(map[string]*ClaimChecker)}
}

func (r *mapRegistry) Put(c *ClaimChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[c.ID()] = c
}

func (r *mapRegistry) Get(id string) (*ClaimChecker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checkers[id]
	return c, ok
}

func (r *mapRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, id)
}

func (r *mapRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.checkers)
}

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, nil)

	c := m.Create(context.Background())
	got, err := m.Get(c.ID())

	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, 1, m.Count())
}

func TestManager_CheckersAreIndependent(t *testing.T) {
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, nil)
	ctx := context.Background()

	a := m.Create(ctx)
	b := m.Create(ctx)
	a.SetQuery("only in a")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Empty(t, b.State().SearchQuery)
}

func TestManager_Get_InvalidID(t *testing.T) {
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, nil)

	_, err := m.Get("not-a-uuid")

	assert.True(t, errors.IsValidation(err))
}

func TestManager_Get_Unknown(t *testing.T) {
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, nil)

	_, err := m.Get(uuid.New().String())

	assert.True(t, errors.IsNotFound(err))
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, nil)
	c := m.Create(context.Background())

	require.NoError(t, m.Delete(c.ID()))

	_, err := m.Get(c.ID())
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(m.Delete(c.ID())))
}

func TestManager_Create_HonorsStaleDiscardFlag(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.DiscardStaleResults: false,
	})
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, flags)

	c := m.Create(context.Background())

	assert.False(t, c.discardStale)
}

func TestManager_Create_DiscardsStaleWithoutFlags(t *testing.T) {
	m := NewManager(newMapRegistry(), instantFactChecker{}, nil, nil)

	assert.True(t, m.Create(context.Background()).discardStale)
}
