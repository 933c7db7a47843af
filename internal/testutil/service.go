package testutil

import (
	"github.com/preston-bernstein/pickup-teams-service/internal/app/sessions"
	"github.com/preston-bernstein/pickup-teams-service/internal/store"
)

// NewSessionService builds a sessions service backed by a fresh in-memory store.
func NewSessionService() (*sessions.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	return sessions.NewService(ms), ms
}
