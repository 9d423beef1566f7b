package identity

import (
	"strings"
	"time"

	"github.com/artisan/storefront/internal/domain/shared"
)

// GuestName is the placeholder display name used when a session is
// created implicitly, e.g. by a subscription purchase without a login
const GuestName = "Guest"

// Session represents who is using the storefront right now
// Absence of a session means the shopper is browsing as a guest
type Session struct {
	shared.BaseAggregateRoot
	Name  string // Display name derived from the login identifier
	Email string // Raw identifier as provided at login, may be empty for guest sessions
	Plan  string // Subscription plan code, empty until first subscription purchase
}

// NewSession creates a session from a login identifier
// The display name is the local part of an email-like identifier;
// identifiers without an "@" are used verbatim
func NewSession(identifier string) (*Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Login identifier cannot be empty")
	}

	s := &Session{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              displayName(identifier),
		Email:             identifier,
	}
	s.AddDomainEvent(NewSessionStartedEvent(s))
	return s, nil
}

// NewGuestSession creates a session without a login identifier
// Used when a subscription purchase completes while no one is logged in
func NewGuestSession() *Session {
	s := &Session{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              GuestName,
	}
	s.AddDomainEvent(NewSessionStartedEvent(s))
	return s
}

// EnrollPlan sets the session's subscription plan
func (s *Session) EnrollPlan(planCode string) error {
	if planCode == "" {
		return shared.NewDomainError("INVALID_INPUT", "Plan code cannot be empty")
	}

	previous := s.Plan
	s.Plan = planCode
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewPlanEnrolledEvent(s, previous))
	return nil
}

// HasPlan returns true if the session is enrolled in a subscription plan
func (s *Session) HasPlan() bool {
	return s.Plan != ""
}

// IsGuest returns true if the session was created without a login
func (s *Session) IsGuest() bool {
	return s.Email == ""
}

// Clone returns an independent copy of the session with no pending
// domain events. Repositories hand out clones so concurrent requests
// never share a mutable aggregate
func (s *Session) Clone() *Session {
	clone := *s
	clone.ClearDomainEvents()
	return &clone
}

// displayName derives a display name from a login identifier
func displayName(identifier string) string {
	if at := strings.Index(identifier, "@"); at > 0 {
		return identifier[:at]
	}
	return identifier
}
