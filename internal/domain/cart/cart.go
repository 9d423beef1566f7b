package cart

import (
	"time"

	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Item represents a product line in a cart
// It carries a snapshot of the product's display data so the cart
// remains renderable without a catalog lookup
type Item struct {
	ProductID   uuid.UUID
	ProductCode string
	Name        string
	Tagline     string
	UnitPrice   valueobject.Money
	Category    catalog.Category
	Image       string
	Quantity    int
	AddedAt     time.Time
	UpdatedAt   time.Time
}

// Subtotal returns UnitPrice multiplied by Quantity
func (i *Item) Subtotal() valueobject.Money {
	return i.UnitPrice.MultiplyByInt(int64(i.Quantity))
}

// Cart is the aggregate root for a shopper's in-session cart
// Items keep the order in which distinct products were first added
type Cart struct {
	shared.BaseAggregateRoot
	Items []Item
}

// NewCart creates a new empty cart
func NewCart() *Cart {
	c := &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Items:             make([]Item, 0),
	}
	c.AddDomainEvent(NewCartCreatedEvent(c))
	return c
}

// Add puts one unit of the product into the cart
// If an item for the same product already exists its quantity is
// incremented instead of appending a duplicate line
func (c *Cart) Add(product *catalog.Product) error {
	if product == nil {
		return shared.NewDomainError("INVALID_INPUT", "Product is required")
	}
	if product.Name == "" || product.Price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product is malformed")
	}

	now := time.Now()
	for idx := range c.Items {
		if c.Items[idx].ProductID == product.ID {
			c.Items[idx].Quantity++
			c.Items[idx].UpdatedAt = now
			c.touch(now)
			c.AddDomainEvent(NewItemAddedEvent(c, product.ID, c.Items[idx].Quantity))
			return nil
		}
	}

	c.Items = append(c.Items, Item{
		ProductID:   product.ID,
		ProductCode: product.Code,
		Name:        product.Name,
		Tagline:     product.Tagline,
		UnitPrice:   product.PriceMoney(),
		Category:    product.Category,
		Image:       product.Image,
		Quantity:    1,
		AddedAt:     now,
		UpdatedAt:   now,
	})
	c.touch(now)
	c.AddDomainEvent(NewItemAddedEvent(c, product.ID, 1))
	return nil
}

// Remove deletes the item for the given product
// Removing an absent product is a no-op, not an error
func (c *Cart) Remove(productID uuid.UUID) {
	for idx, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.touch(time.Now())
			c.AddDomainEvent(NewItemRemovedEvent(c, productID))
			return
		}
	}
}

// UpdateQuantity adds delta (positive or negative) to the item's quantity,
// clamped to a minimum of 1. Updating an absent product is a no-op
func (c *Cart) UpdateQuantity(productID uuid.UUID, delta int) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			qty := c.Items[idx].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			if qty == c.Items[idx].Quantity {
				return
			}
			c.Items[idx].Quantity = qty
			now := time.Now()
			c.Items[idx].UpdatedAt = now
			c.touch(now)
			c.AddDomainEvent(NewQuantityChangedEvent(c, productID, qty))
			return
		}
	}
}

// Clear empties the cart unconditionally. Clearing an already-empty
// cart is a no-op
func (c *Cart) Clear() {
	if len(c.Items) == 0 {
		return
	}
	c.Items = c.Items[:0]
	c.touch(time.Now())
	c.AddDomainEvent(NewCartClearedEvent(c))
}

// ItemCount returns the sum of quantities across all items
// Recomputed on every call; the cart is always small
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of unit price times quantity across all items
// Recomputed on every call, full precision kept
func (c *Cart) Total() valueobject.Money {
	total := valueobject.ZeroUSD()
	for _, item := range c.Items {
		total = total.MustAdd(item.Subtotal())
	}
	return total
}

// IsEmpty returns true if the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// GetItem returns the item for the given product, or nil if absent
func (c *Cart) GetItem(productID uuid.UUID) *Item {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// Clone returns an independent copy of the cart with no pending
// domain events. Repositories hand out clones so readers and writers
// never share a mutable aggregate
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.ClearDomainEvents()
	clone.Items = make([]Item, len(c.Items))
	copy(clone.Items, c.Items)
	return &clone
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.IncrementVersion()
}
