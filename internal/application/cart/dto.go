package cart

import (
	"time"

	"github.com/artisan/storefront/internal/domain/cart"
	"github.com/google/uuid"
)

// AddItemRequest represents a request to add a product to a cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest represents a request to adjust an item's quantity
// Delta is added to the current quantity; the result is clamped to 1
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ItemResponse represents a cart line in API responses
type ItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	Name        string    `json:"name"`
	Tagline     string    `json:"tagline"`
	UnitPrice   string    `json:"unit_price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
	AddedAt     time.Time `json:"added_at"`
}

// CartResponse represents a cart in API responses
// ItemCount and Total are derived from the items on every render
type CartResponse struct {
	ID        uuid.UUID      `json:"id"`
	Items     []ItemResponse `json:"items"`
	ItemCount int            `json:"item_count"`
	Total     string         `json:"total"`
	IsEmpty   bool           `json:"is_empty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ToCartResponse converts a cart to its response representation
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]ItemResponse, 0, len(c.Items))
	for idx := range c.Items {
		item := &c.Items[idx]
		items = append(items, ItemResponse{
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			Name:        item.Name,
			Tagline:     item.Tagline,
			UnitPrice:   item.UnitPrice.Display(),
			Category:    item.Category.String(),
			Image:       item.Image,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal().Display(),
			AddedAt:     item.AddedAt,
		})
	}

	return CartResponse{
		ID:        c.ID,
		Items:     items,
		ItemCount: c.ItemCount(),
		Total:     c.Total().Display(),
		IsEmpty:   c.IsEmpty(),
		UpdatedAt: c.UpdatedAt,
	}
}
