package identity

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository provides access to active sessions
type SessionRepository interface {
	// Save persists a session (create or update)
	Save(ctx context.Context, s *Session) error
	// FindByID retrieves a session by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	// Delete removes a session
	Delete(ctx context.Context, id uuid.UUID) error
}
