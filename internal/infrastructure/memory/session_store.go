package memory

import (
	"context"
	"sync"

	"github.com/artisan/storefront/internal/domain/identity"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// SessionStore is an in-memory session repository
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*identity.Session
}

// NewSessionStore creates an empty SessionStore
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*identity.Session)}
}

// Save stores a snapshot of the session, replacing any previous state
func (s *SessionStore) Save(_ context.Context, session *identity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
	return nil
}

// FindByID retrieves a private copy of the session
func (s *SessionStore) FindByID(_ context.Context, id uuid.UUID) (*identity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "Session not found")
	}
	return session.Clone(), nil
}

// Delete removes a session. Deleting an absent session is a no-op
func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

var _ identity.SessionRepository = (*SessionStore)(nil)
