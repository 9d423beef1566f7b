package identity

import (
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeSession = "Session"

// Event type constants
const (
	EventTypeSessionStarted = "SessionStarted"
	EventTypeSessionEnded   = "SessionEnded"
	EventTypePlanEnrolled   = "PlanEnrolled"
)

// SessionStartedEvent is raised when a session is created
type SessionStartedEvent struct {
	shared.BaseDomainEvent
	SessionID uuid.UUID `json:"session_id"`
	Name      string    `json:"name"`
	Guest     bool      `json:"guest"`
}

// NewSessionStartedEvent creates a new SessionStartedEvent
func NewSessionStartedEvent(s *Session) *SessionStartedEvent {
	return &SessionStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSessionStarted, AggregateTypeSession, s.ID),
		SessionID:       s.ID,
		Name:            s.Name,
		Guest:           s.IsGuest(),
	}
}

// EventType returns the event type name
func (e *SessionStartedEvent) EventType() string {
	return EventTypeSessionStarted
}

// SessionEndedEvent is raised when a session is destroyed by logout
type SessionEndedEvent struct {
	shared.BaseDomainEvent
	SessionID uuid.UUID `json:"session_id"`
}

// NewSessionEndedEvent creates a new SessionEndedEvent
func NewSessionEndedEvent(sessionID uuid.UUID) *SessionEndedEvent {
	return &SessionEndedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSessionEnded, AggregateTypeSession, sessionID),
		SessionID:       sessionID,
	}
}

// EventType returns the event type name
func (e *SessionEndedEvent) EventType() string {
	return EventTypeSessionEnded
}

// PlanEnrolledEvent is raised when a session's subscription plan changes
type PlanEnrolledEvent struct {
	shared.BaseDomainEvent
	SessionID    uuid.UUID `json:"session_id"`
	Plan         string    `json:"plan"`
	PreviousPlan string    `json:"previous_plan,omitempty"`
}

// NewPlanEnrolledEvent creates a new PlanEnrolledEvent
func NewPlanEnrolledEvent(s *Session, previousPlan string) *PlanEnrolledEvent {
	return &PlanEnrolledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlanEnrolled, AggregateTypeSession, s.ID),
		SessionID:       s.ID,
		Plan:            s.Plan,
		PreviousPlan:    previousPlan,
	}
}

// EventType returns the event type name
func (e *PlanEnrolledEvent) EventType() string {
	return EventTypePlanEnrolled
}
