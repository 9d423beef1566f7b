package cart

import (
	"context"
	"sync"

	"github.com/artisan/storefront/internal/domain/cart"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// BadgeProjection maintains the header badge count per cart
// It is updated synchronously from cart events so the badge
// reflects every mutation as soon as the command returns
type BadgeProjection struct {
	mu     sync.RWMutex
	counts map[uuid.UUID]int
}

// NewBadgeProjection creates an empty BadgeProjection
func NewBadgeProjection() *BadgeProjection {
	return &BadgeProjection{
		counts: make(map[uuid.UUID]int),
	}
}

// EventTypes returns the cart event types the projection consumes
func (p *BadgeProjection) EventTypes() []string {
	return []string{
		cart.EventTypeCartCreated,
		cart.EventTypeItemAdded,
		cart.EventTypeItemRemoved,
		cart.EventTypeQuantityChanged,
		cart.EventTypeCartCleared,
	}
}

// Handle applies a cart event to the projection
func (p *BadgeProjection) Handle(_ context.Context, event shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e := event.(type) {
	case *cart.CartCreatedEvent:
		p.counts[e.CartID] = 0
	case *cart.ItemAddedEvent:
		p.counts[e.CartID] = e.ItemCount
	case *cart.ItemRemovedEvent:
		p.counts[e.CartID] = e.ItemCount
	case *cart.QuantityChangedEvent:
		p.counts[e.CartID] = e.ItemCount
	case *cart.CartClearedEvent:
		p.counts[e.CartID] = 0
	}
	return nil
}

// Count returns the badge count for a cart; unknown carts read zero
func (p *BadgeProjection) Count(cartID uuid.UUID) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.counts[cartID]
}
