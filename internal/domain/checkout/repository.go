package checkout

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for checkouts
type Repository interface {
	Save(ctx context.Context, c *Checkout) error
	FindByID(ctx context.Context, id uuid.UUID) (*Checkout, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
