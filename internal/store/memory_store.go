package store

import (
	"sync"
	"time"

	domainsessions "github.com/preston-bernstein/pickup-teams-service/internal/domain/sessions"
)

// MemoryStore keeps a thread-safe set of sessions in memory. Nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domainsessions.Session
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domainsessions.Session),
	}
}

// PutSession stores a copy of s, replacing any session with the same ID.
func (s *MemoryStore) PutSession(session domainsessions.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session.Clone()
}

// GetSession retrieves a copy of a session by ID.
func (s *MemoryStore) GetSession(id string) (domainsessions.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return domainsessions.Session{}, false
	}
	return session.Clone(), true
}

// UpdateSession applies fn to a session under the write lock. Changes are discarded when fn errors.
func (s *MemoryStore) UpdateSession(id string, fn func(*domainsessions.Session) error) (domainsessions.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return domainsessions.Session{}, domainsessions.ErrNotFound
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return domainsessions.Session{}, err
	}
	s.sessions[id] = next
	return next.Clone(), nil
}

// DeleteSession removes a session and reports whether it existed.
func (s *MemoryStore) DeleteSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// DeleteIdleSince removes sessions last seen before cutoff and returns how many were dropped.
func (s *MemoryStore) DeleteIdleSince(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
