package catalog

import (
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Category represents a product category
type Category string

const (
	CategoryChocolate Category = "Chocolate"
	CategoryJuice     Category = "Juice"
	CategoryBox       Category = "Box"
)

// IsValid checks if the category is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryChocolate, CategoryJuice, CategoryBox:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Product represents a purchasable item in the catalog
// Products are defined once at startup and never mutated
type Product struct {
	shared.BaseEntity
	Code        string // Stable catalog code, unique across the catalog
	Name        string
	Description string
	Tagline     string
	Price       decimal.Decimal
	Category    Category
	Image       string // Opaque image URI
}

// NewProduct creates a new catalog product
func NewProduct(code, name, description, tagline string, price decimal.Decimal, category Category, image string) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Code:        code,
		Name:        name,
		Description: description,
		Tagline:     tagline,
		Price:       price,
		Category:    category,
		Image:       image,
	}, nil
}

// PriceMoney returns the product price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}
