package catalog

import (
	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tagline     string    `json:"tagline"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
}

// PlanResponse represents a subscription plan in API responses
type PlanResponse struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code"`
	Name  string    `json:"name"`
	Price string    `json:"price"`
	Perks []string  `json:"perks"`
}

// ToProductResponse converts a product to its response representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Tagline:     p.Tagline,
		Price:       p.PriceMoney().Display(),
		Category:    p.Category.String(),
		Image:       p.Image,
	}
}

// ToPlanResponse converts a plan to its response representation
func ToPlanResponse(p *catalog.Plan) PlanResponse {
	return PlanResponse{
		ID:    p.ID,
		Code:  p.Code,
		Name:  p.Name,
		Price: p.PriceMoney().Display(),
		Perks: p.Perks,
	}
}
