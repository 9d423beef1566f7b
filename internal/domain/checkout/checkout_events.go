package checkout

import (
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCheckout = "Checkout"

// Event type constants
const (
	EventTypeCheckoutCreated   = "CheckoutCreated"
	EventTypeCheckoutStarted   = "CheckoutStarted"
	EventTypeCheckoutConfirmed = "CheckoutConfirmed"
	EventTypeCheckoutFailed    = "CheckoutFailed"
)

// CheckoutCreatedEvent is raised when a checkout is created
type CheckoutCreatedEvent struct {
	shared.BaseDomainEvent
	CheckoutID uuid.UUID  `json:"checkout_id"`
	Kind       Kind       `json:"kind"`
	CartID     *uuid.UUID `json:"cart_id,omitempty"`
	PlanCode   string     `json:"plan_code,omitempty"`
	Amount     string     `json:"amount"`
}

// NewCheckoutCreatedEvent creates a new CheckoutCreatedEvent
func NewCheckoutCreatedEvent(c *Checkout) *CheckoutCreatedEvent {
	return &CheckoutCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCheckoutCreated, AggregateTypeCheckout, c.ID),
		CheckoutID:      c.ID,
		Kind:            c.Kind,
		CartID:          c.CartID,
		PlanCode:        c.PlanCode,
		Amount:          c.Amount.Display(),
	}
}

// EventType returns the event type name
func (e *CheckoutCreatedEvent) EventType() string {
	return EventTypeCheckoutCreated
}

// CheckoutStartedEvent is raised when a checkout enters processing
type CheckoutStartedEvent struct {
	shared.BaseDomainEvent
	CheckoutID uuid.UUID `json:"checkout_id"`
	Kind       Kind      `json:"kind"`
	Amount     string    `json:"amount"`
}

// NewCheckoutStartedEvent creates a new CheckoutStartedEvent
func NewCheckoutStartedEvent(c *Checkout) *CheckoutStartedEvent {
	return &CheckoutStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCheckoutStarted, AggregateTypeCheckout, c.ID),
		CheckoutID:      c.ID,
		Kind:            c.Kind,
		Amount:          c.Amount.Display(),
	}
}

// EventType returns the event type name
func (e *CheckoutStartedEvent) EventType() string {
	return EventTypeCheckoutStarted
}

// CheckoutConfirmedEvent is raised exactly once, when a checkout completes
type CheckoutConfirmedEvent struct {
	shared.BaseDomainEvent
	CheckoutID uuid.UUID  `json:"checkout_id"`
	Kind       Kind       `json:"kind"`
	CartID     *uuid.UUID `json:"cart_id,omitempty"`
	SessionID  *uuid.UUID `json:"session_id,omitempty"`
	PlanCode   string     `json:"plan_code,omitempty"`
	Amount     string     `json:"amount"`
}

// NewCheckoutConfirmedEvent creates a new CheckoutConfirmedEvent
func NewCheckoutConfirmedEvent(c *Checkout) *CheckoutConfirmedEvent {
	return &CheckoutConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCheckoutConfirmed, AggregateTypeCheckout, c.ID),
		CheckoutID:      c.ID,
		Kind:            c.Kind,
		CartID:          c.CartID,
		SessionID:       c.SessionID,
		PlanCode:        c.PlanCode,
		Amount:          c.Amount.Display(),
	}
}

// EventType returns the event type name
func (e *CheckoutConfirmedEvent) EventType() string {
	return EventTypeCheckoutConfirmed
}

// CheckoutFailedEvent is raised when a payment attempt fails
type CheckoutFailedEvent struct {
	shared.BaseDomainEvent
	CheckoutID uuid.UUID `json:"checkout_id"`
	Kind       Kind      `json:"kind"`
	Reason     string    `json:"reason"`
}

// NewCheckoutFailedEvent creates a new CheckoutFailedEvent
func NewCheckoutFailedEvent(c *Checkout) *CheckoutFailedEvent {
	return &CheckoutFailedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCheckoutFailed, AggregateTypeCheckout, c.ID),
		CheckoutID:      c.ID,
		Kind:            c.Kind,
		Reason:          c.FailReason,
	}
}

// EventType returns the event type name
func (e *CheckoutFailedEvent) EventType() string {
	return EventTypeCheckoutFailed
}
