package catalog

import (
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Plan represents a recurring subscription tier
// Plans are defined once at startup and never mutated
type Plan struct {
	shared.BaseEntity
	Code  string // Stable plan code, e.g. "premium"
	Name  string // Display name, e.g. "Premium"
	Price decimal.Decimal
	Perks []string
}

// NewPlan creates a new subscription plan
func NewPlan(code, name string, price decimal.Decimal, perks []string) (*Plan, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Plan code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Plan name cannot be empty")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Plan price must be positive")
	}

	return &Plan{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Price:      price,
		Perks:      perks,
	}, nil
}

// PriceMoney returns the monthly plan price as a Money value object
func (p *Plan) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}
