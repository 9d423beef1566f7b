package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository provides read access to the static product catalog
type ProductRepository interface {
	// FindByID retrieves a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByCode retrieves a product by its catalog code
	FindByCode(ctx context.Context, code string) (*Product, error)
	// FindAll retrieves all products in catalog order
	FindAll(ctx context.Context) ([]*Product, error)
	// FindByCategory retrieves all products in the given category, in catalog order
	FindByCategory(ctx context.Context, category Category) ([]*Product, error)
}

// PlanRepository provides read access to the static subscription plan list
type PlanRepository interface {
	// FindByCode retrieves a plan by its code
	FindByCode(ctx context.Context, code string) (*Plan, error)
	// FindAll retrieves all plans ordered by price ascending
	FindAll(ctx context.Context) ([]*Plan, error)
}
