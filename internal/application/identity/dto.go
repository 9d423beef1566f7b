package identity

import (
	"time"

	"github.com/artisan/storefront/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginRequest represents a login request
// Any non-empty identifier starts a session; there is no password
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// UpdatePlanRequest represents a plan enrollment request
type UpdatePlanRequest struct {
	PlanCode string `json:"plan_code" binding:"required"`
}

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Plan      string    `json:"plan,omitempty"`
	Guest     bool      `json:"guest"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Session   SessionResponse `json:"session"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	TokenType string          `json:"token_type"`
}

// ToSessionResponse converts a session to its response representation
func ToSessionResponse(s *identity.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Plan:      s.Plan,
		Guest:     s.IsGuest(),
		CreatedAt: s.CreatedAt,
	}
}
