package memory

import (
	"context"
	"sync"

	"github.com/artisan/storefront/internal/domain/cart"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// CartStore is an in-memory cart repository
// Carts live only for the lifetime of the process
type CartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*cart.Cart
}

// NewCartStore creates an empty CartStore
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uuid.UUID]*cart.Cart)}
}

// Save stores a snapshot of the cart, replacing any previous state.
// The caller keeps its own instance; later mutations to it are not
// visible until the next Save
func (s *CartStore) Save(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.ID] = c.Clone()
	return nil
}

// FindByID retrieves a private copy of the cart. Copies keep readers
// and writers from racing on a shared aggregate; writes only land via
// Save, the same visibility a database-backed repository gives
func (s *CartStore) FindByID(_ context.Context, id uuid.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "Cart not found")
	}
	return c.Clone(), nil
}

// Delete removes a cart. Deleting an absent cart is a no-op
func (s *CartStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

var _ cart.Repository = (*CartStore)(nil)
