// Package session owns the registry of live booking sessions. Each
// session wraps one flow controller; idle sessions are swept out after
// a TTL so abandoned bookings do not accumulate.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/flow"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
)

// Factory builds the controller backing a new session. The session id
// doubles as the request correlation id in logs.
type Factory func(sessionID string) *flow.Controller

type entry struct {
	ctrl     *flow.Controller
	lastSeen time.Time
}

// Manager is a TTL-bounded in-memory session registry.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	factory  Factory
	ttl      time.Duration
	now      func() time.Time
}

// Options tune a manager. Zero values fall back to defaults.
type Options struct {
	TTL time.Duration
	Now func() time.Time
}

func NewManager(factory Factory, opts Options) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		sessions: map[string]*entry{},
		factory:  factory,
		ttl:      opts.TTL,
		now:      opts.Now,
	}
}

// Create registers a new session and returns its id and controller.
func (m *Manager) Create() (string, *flow.Controller) {
	id := uuid.NewString()
	ctrl := m.factory(id)

	m.mu.Lock()
	m.sessions[id] = &entry{ctrl: ctrl, lastSeen: m.now()}
	n := len(m.sessions)
	m.mu.Unlock()

	utils.LogEvent(id, "session", "create", fmt.Sprintf("active=%d", n))
	return id, ctrl
}

// Get looks up a session and refreshes its idle clock. The second
// return is false for unknown or already evicted ids.
func (m *Manager) Get(id string) (*flow.Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.now()
	return e.ctrl, true
}

// Remove drops a session. Removing an unknown id is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		utils.LogEvent(id, "session", "remove", "closed by client")
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Start runs the idle sweeper until ctx is done. Sweeps run at a
// quarter of the TTL so an idle session overstays by at most 25%.
func (m *Manager) Start(ctx context.Context) {
	interval := m.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Sweep evicts every session idle for longer than the TTL and returns
// how many were dropped. Evicted sessions are deleted outright; a
// later request for the id gets a not-found, not a timed-out booking.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	var evicted []string
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, id := range evicted {
		utils.LogEvent(id, "session", "evict", "idle past ttl")
	}
	return len(evicted)
}
