package memory

import (
	"context"
	"sync"

	"github.com/artisan/storefront/internal/domain/checkout"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// CheckoutStore is an in-memory checkout repository
type CheckoutStore struct {
	mu        sync.RWMutex
	checkouts map[uuid.UUID]*checkout.Checkout
}

// NewCheckoutStore creates an empty CheckoutStore
func NewCheckoutStore() *CheckoutStore {
	return &CheckoutStore{checkouts: make(map[uuid.UUID]*checkout.Checkout)}
}

// Save stores a snapshot of the checkout, replacing any previous state
func (s *CheckoutStore) Save(_ context.Context, c *checkout.Checkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkouts[c.ID] = c.Clone()
	return nil
}

// FindByID retrieves a private copy of the checkout. Status pollers
// read their own copy while the settlement goroutine mutates its own;
// the confirmed state becomes visible atomically on Save
func (s *CheckoutStore) FindByID(_ context.Context, id uuid.UUID) (*checkout.Checkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checkouts[id]
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "Checkout not found")
	}
	return c.Clone(), nil
}

// Delete removes a checkout. Deleting an absent checkout is a no-op
func (s *CheckoutStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.checkouts, id)
	return nil
}

var _ checkout.Repository = (*CheckoutStore)(nil)
