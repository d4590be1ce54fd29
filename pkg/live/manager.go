package live

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Manager tracks the connected sessions and enforces the session cap.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	max      int
	total    uint64
}

// NewManager returns a manager admitting at most max sessions.
func NewManager(max int) *Manager {
	return &Manager{sessions: make(map[string]*Session), max: max}
}

// newSessionID returns a 128-bit random hex identifier.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("live: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// Add admits s under a fresh identifier. It fails when the cap is
// reached.
func (m *Manager) Add(s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sessions) >= m.max {
		return false
	}
	s.id = newSessionID()
	m.sessions[s.id] = s
	m.total++
	return true
}

// Remove drops the session with the given id.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Get returns the session with the given id, nil when unknown.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Len returns the number of connected sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Total returns the number of sessions admitted since start.
func (m *Manager) Total() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total
}

// Each calls fn for every connected session. fn must not call back into
// the manager.
func (m *Manager) Each(fn func(*Session)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		fn(s)
	}
}

// CloseAll closes every session, used during shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
