package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/flow"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/payment"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/trains"
)

func testFactory(id string) *flow.Controller {
	catalog := trains.NewStaticCatalog()
	gw := payment.NewSimulator(0, 1.0, nil)
	return flow.New(catalog, gw, flow.Options{RequestID: id})
}

func TestCreateAndGet(t *testing.T) {
	m := NewManager(testFactory, Options{TTL: time.Minute})

	id, ctrl := m.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, ctrl)

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Same(t, ctrl, got)

	_, ok = m.Get("no-such-session")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	m := NewManager(testFactory, Options{TTL: time.Minute})
	id, _ := m.Create()

	m.Remove(id)
	_, ok := m.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	m.Remove(id) // second remove is a no-op
}

func TestSweepEvictsOnlyIdleSessions(t *testing.T) {
	clock := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	m := NewManager(testFactory, Options{TTL: 10 * time.Minute, Now: now})

	stale, _ := m.Create()
	clock = clock.Add(11 * time.Minute)
	fresh, _ := m.Create()

	assert.Equal(t, 1, m.Sweep())
	_, ok := m.Get(stale)
	assert.False(t, ok)
	_, ok = m.Get(fresh)
	assert.True(t, ok)
}

func TestGetRefreshesIdleClock(t *testing.T) {
	clock := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	m := NewManager(testFactory, Options{TTL: 10 * time.Minute, Now: now})

	id, _ := m.Create()
	clock = clock.Add(9 * time.Minute)
	_, ok := m.Get(id)
	require.True(t, ok)

	clock = clock.Add(9 * time.Minute)
	assert.Equal(t, 0, m.Sweep(), "touched session must survive")
	_, ok = m.Get(id)
	assert.True(t, ok)
}

func TestDistinctSessionIDs(t *testing.T) {
	m := NewManager(testFactory, Options{TTL: time.Minute})
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, _ := m.Create()
		require.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}
