package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides access to carts
type Repository interface {
	// Save persists a cart (create or update)
	Save(ctx context.Context, c *Cart) error
	// FindByID retrieves a cart by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	// Delete removes a cart
	Delete(ctx context.Context, id uuid.UUID) error
}
