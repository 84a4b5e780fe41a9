// Package containers holds the runtime state shared with container
// distribution.
package containers

import "sync"

// DefaultMaxLookupRadius is used until settings are published.
const DefaultMaxLookupRadius = 25000.0

// Manager is written once by the settings reconciler during startup and read
// by distribution afterwards.
type Manager struct {
	mu              sync.RWMutex
	maxLookupRadius float64
}

func NewManager() *Manager {
	return &Manager{maxLookupRadius: DefaultMaxLookupRadius}
}

// SetMaxLookupRadius stores the distance searched for a substitute marker.
func (m *Manager) SetMaxLookupRadius(r float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxLookupRadius = r
}

func (m *Manager) MaxLookupRadius() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.maxLookupRadius
}
