package cart

import (
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCart = "Cart"

// Event type constants
const (
	EventTypeCartCreated     = "CartCreated"
	EventTypeItemAdded       = "CartItemAdded"
	EventTypeItemRemoved     = "CartItemRemoved"
	EventTypeQuantityChanged = "CartQuantityChanged"
	EventTypeCartCleared     = "CartCleared"
)

// CartCreatedEvent is raised when a new cart is created
type CartCreatedEvent struct {
	shared.BaseDomainEvent
	CartID uuid.UUID `json:"cart_id"`
}

// NewCartCreatedEvent creates a new CartCreatedEvent
func NewCartCreatedEvent(c *Cart) *CartCreatedEvent {
	return &CartCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCreated, AggregateTypeCart, c.ID),
		CartID:          c.ID,
	}
}

// EventType returns the event type name
func (e *CartCreatedEvent) EventType() string {
	return EventTypeCartCreated
}

// ItemAddedEvent is raised when a product is added to a cart
// Quantity carries the item's quantity after the add
type ItemAddedEvent struct {
	shared.BaseDomainEvent
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	ItemCount int       `json:"item_count"`
}

// NewItemAddedEvent creates a new ItemAddedEvent
func NewItemAddedEvent(c *Cart, productID uuid.UUID, quantity int) *ItemAddedEvent {
	return &ItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemAdded, AggregateTypeCart, c.ID),
		CartID:          c.ID,
		ProductID:       productID,
		Quantity:        quantity,
		ItemCount:       c.ItemCount(),
	}
}

// EventType returns the event type name
func (e *ItemAddedEvent) EventType() string {
	return EventTypeItemAdded
}

// ItemRemovedEvent is raised when a product line is removed from a cart
type ItemRemovedEvent struct {
	shared.BaseDomainEvent
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	ItemCount int       `json:"item_count"`
}

// NewItemRemovedEvent creates a new ItemRemovedEvent
func NewItemRemovedEvent(c *Cart, productID uuid.UUID) *ItemRemovedEvent {
	return &ItemRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemRemoved, AggregateTypeCart, c.ID),
		CartID:          c.ID,
		ProductID:       productID,
		ItemCount:       c.ItemCount(),
	}
}

// EventType returns the event type name
func (e *ItemRemovedEvent) EventType() string {
	return EventTypeItemRemoved
}

// QuantityChangedEvent is raised when an item's quantity changes
type QuantityChangedEvent struct {
	shared.BaseDomainEvent
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	ItemCount int       `json:"item_count"`
}

// NewQuantityChangedEvent creates a new QuantityChangedEvent
func NewQuantityChangedEvent(c *Cart, productID uuid.UUID, quantity int) *QuantityChangedEvent {
	return &QuantityChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuantityChanged, AggregateTypeCart, c.ID),
		CartID:          c.ID,
		ProductID:       productID,
		Quantity:        quantity,
		ItemCount:       c.ItemCount(),
	}
}

// EventType returns the event type name
func (e *QuantityChangedEvent) EventType() string {
	return EventTypeQuantityChanged
}

// CartClearedEvent is raised when a cart is emptied
type CartClearedEvent struct {
	shared.BaseDomainEvent
	CartID uuid.UUID `json:"cart_id"`
}

// NewCartClearedEvent creates a new CartClearedEvent
func NewCartClearedEvent(c *Cart) *CartClearedEvent {
	return &CartClearedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCleared, AggregateTypeCart, c.ID),
		CartID:          c.ID,
	}
}

// EventType returns the event type name
func (e *CartClearedEvent) EventType() string {
	return EventTypeCartCleared
}
