package checkout

import (
	"time"

	"github.com/artisan/storefront/internal/domain/checkout"
	"github.com/google/uuid"
)

// CreateOrderCheckoutRequest starts a checkout for a cart
type CreateOrderCheckoutRequest struct {
	CartID uuid.UUID `json:"cart_id" binding:"required"`
}

// CreateSubscriptionCheckoutRequest starts a checkout for a plan
// CartID is optional; when present the cart is emptied on confirmation
type CreateSubscriptionCheckoutRequest struct {
	PlanCode string     `json:"plan_code" binding:"required"`
	CartID   *uuid.UUID `json:"cart_id,omitempty"`
}

// CheckoutResponse represents a checkout in API responses
type CheckoutResponse struct {
	ID          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	CartID      *uuid.UUID `json:"cart_id,omitempty"`
	SessionID   *uuid.UUID `json:"session_id,omitempty"`
	PlanCode    string     `json:"plan_code,omitempty"`
	Amount      string     `json:"amount"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	FailReason  string     `json:"fail_reason,omitempty"`
}

// ToCheckoutResponse converts a checkout to its response representation
func ToCheckoutResponse(c *checkout.Checkout) CheckoutResponse {
	return CheckoutResponse{
		ID:          c.ID,
		Kind:        string(c.Kind),
		Status:      c.Status.String(),
		CartID:      c.CartID,
		SessionID:   c.SessionID,
		PlanCode:    c.PlanCode,
		Amount:      c.Amount.Display(),
		StartedAt:   c.StartedAt,
		ConfirmedAt: c.ConfirmedAt,
		FailReason:  c.FailReason,
	}
}
