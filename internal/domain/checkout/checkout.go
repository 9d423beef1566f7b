package checkout

import (
	"fmt"
	"time"

	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Status represents the state of a checkout
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed"
	StatusFailed     Status = "failed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusIdle, StatusProcessing, StatusConfirmed, StatusFailed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusIdle:
		return target == StatusProcessing
	case StatusProcessing:
		return target == StatusConfirmed || target == StatusFailed
	case StatusFailed:
		// A failed checkout may be retried
		return target == StatusProcessing
	case StatusConfirmed:
		return false // Terminal
	}
	return false
}

// IsTerminal returns true for states with no outgoing transitions
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed
}

// Kind distinguishes a one-time order checkout from a subscription checkout
type Kind string

const (
	KindOrder        Kind = "order"
	KindSubscription Kind = "subscription"
)

// Checkout is the aggregate root for a purchase confirmation sequence
// It turns a cart (or a selected plan) into a completed-purchase signal;
// navigation after confirmation is the caller's concern
type Checkout struct {
	shared.BaseAggregateRoot
	Kind        Kind
	CartID      *uuid.UUID // Cart being purchased; optional for subscription checkouts
	SessionID   *uuid.UUID // Session the purchase belongs to, if any at creation time
	PlanCode    string     // Subscription checkouts only
	Amount      valueobject.Money
	Status      Status
	StartedAt   *time.Time
	ConfirmedAt *time.Time
	FailedAt    *time.Time
	FailReason  string
}

// NewOrderCheckout creates a checkout for the contents of a cart
func NewOrderCheckout(cartID uuid.UUID, sessionID *uuid.UUID, amount valueobject.Money) (*Checkout, error) {
	if cartID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cart ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Checkout amount cannot be negative")
	}

	c := &Checkout{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              KindOrder,
		CartID:            &cartID,
		SessionID:         sessionID,
		Amount:            amount,
		Status:            StatusIdle,
	}
	c.AddDomainEvent(NewCheckoutCreatedEvent(c))
	return c, nil
}

// NewSubscriptionCheckout creates a checkout for a subscription plan
// cartID is optional: when present, the cart is also emptied on confirmation
func NewSubscriptionCheckout(planCode string, amount valueobject.Money, cartID, sessionID *uuid.UUID) (*Checkout, error) {
	if planCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Plan code cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Subscription amount must be positive")
	}

	c := &Checkout{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              KindSubscription,
		CartID:            cartID,
		SessionID:         sessionID,
		PlanCode:          planCode,
		Amount:            amount,
		Status:            StatusIdle,
	}
	c.AddDomainEvent(NewCheckoutCreatedEvent(c))
	return c, nil
}

// Begin transitions the checkout from idle (or failed, on retry) to processing
func (c *Checkout) Begin() error {
	if !c.Status.CanTransitionTo(StatusProcessing) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot begin checkout in %s status", c.Status))
	}

	now := time.Now()
	c.Status = StatusProcessing
	c.StartedAt = &now
	c.FailReason = ""
	c.UpdatedAt = now
	c.IncrementVersion()

	c.AddDomainEvent(NewCheckoutStartedEvent(c))
	return nil
}

// Complete transitions the checkout from processing to confirmed
// Confirmed is terminal: the completion signal is raised exactly once
func (c *Checkout) Complete() error {
	if !c.Status.CanTransitionTo(StatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot complete checkout in %s status", c.Status))
	}

	now := time.Now()
	c.Status = StatusConfirmed
	c.ConfirmedAt = &now
	c.UpdatedAt = now
	c.IncrementVersion()

	c.AddDomainEvent(NewCheckoutConfirmedEvent(c))
	return nil
}

// Fail transitions the checkout from processing to failed with a reason
func (c *Checkout) Fail(reason string) error {
	if !c.Status.CanTransitionTo(StatusFailed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot fail checkout in %s status", c.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_INPUT", "Failure reason is required")
	}

	now := time.Now()
	c.Status = StatusFailed
	c.FailedAt = &now
	c.FailReason = reason
	c.UpdatedAt = now
	c.IncrementVersion()

	c.AddDomainEvent(NewCheckoutFailedEvent(c))
	return nil
}

// AttachSession records the session the purchase belongs to
// Used when a guest session is created as part of a subscription confirmation
func (c *Checkout) AttachSession(sessionID uuid.UUID) {
	c.SessionID = &sessionID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsIdle returns true if the checkout has not started yet
func (c *Checkout) IsIdle() bool {
	return c.Status == StatusIdle
}

// IsProcessing returns true while the payment is in flight
func (c *Checkout) IsProcessing() bool {
	return c.Status == StatusProcessing
}

// IsConfirmed returns true once the checkout has completed
func (c *Checkout) IsConfirmed() bool {
	return c.Status == StatusConfirmed
}

// IsFailed returns true if the last attempt failed
func (c *Checkout) IsFailed() bool {
	return c.Status == StatusFailed
}

// IsSubscription returns true for subscription checkouts
func (c *Checkout) IsSubscription() bool {
	return c.Kind == KindSubscription
}

// Clone returns an independent copy of the checkout with no pending
// domain events. Repositories hand out clones so a status poller never
// shares the aggregate being settled
func (c *Checkout) Clone() *Checkout {
	clone := *c
	clone.ClearDomainEvents()
	clone.CartID = cloneUUID(c.CartID)
	clone.SessionID = cloneUUID(c.SessionID)
	clone.StartedAt = cloneTime(c.StartedAt)
	clone.ConfirmedAt = cloneTime(c.ConfirmedAt)
	clone.FailedAt = cloneTime(c.FailedAt)
	return &clone
}

func cloneUUID(p *uuid.UUID) *uuid.UUID {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
