package history

import (
	"errors"
	"sync"
	"time"
)

// ErrNoSuchEntry is returned when a sidebar position does not exist.
var ErrNoSuchEntry = errors.New("no such history entry")

// SearchRecord is one stored (query, response) pair.
type SearchRecord struct {
	Query     string
	Response  string
	Failed    bool
	CreatedAt time.Time
}

type session struct {
	records []SearchRecord
	viewed  *SearchRecord
}

// Manager keeps per-session search history in memory.
// Records are append-only and kept in submission order.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*session)}
}

func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func (m *Manager) Append(sessionID string, rec SearchRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[sessionID]
	if s == nil {
		s = &session{}
		m.sessions[sessionID] = s
	}
	s.records = append(s.records, rec)
}

func (m *Manager) Len(sessionID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s := m.sessions[sessionID]; s != nil {
		return len(s.records)
	}
	return 0
}

// All returns the records in submission order.
func (m *Manager) All(sessionID string) []SearchRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.sessions[sessionID]
	if s == nil {
		return nil
	}
	out := make([]SearchRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Recent returns the records most recent first. The stored order is untouched.
func (m *Manager) Recent(sessionID string) []SearchRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.sessions[sessionID]
	if s == nil {
		return nil
	}
	n := len(s.records)
	out := make([]SearchRecord, n)
	for i, rec := range s.records {
		out[n-1-i] = rec
	}
	return out
}

// View marks the record at 1-based position pos of Recent as inspected.
func (m *Manager) View(sessionID string, pos int) (SearchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[sessionID]
	if s == nil || pos < 1 || pos > len(s.records) {
		return SearchRecord{}, ErrNoSuchEntry
	}
	rec := s.records[len(s.records)-pos]
	s.viewed = &rec
	return rec, nil
}

func (m *Manager) Viewed(sessionID string) (SearchRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.sessions[sessionID]
	if s == nil || s.viewed == nil {
		return SearchRecord{}, false
	}
	return *s.viewed, true
}

func (m *Manager) ClearView(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.sessions[sessionID]; s != nil {
		s.viewed = nil
	}
}

// Sessions returns the number of sessions with any history.
func (m *Manager) Sessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
