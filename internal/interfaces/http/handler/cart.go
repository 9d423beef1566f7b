package handler

import (
	cartapp "github.com/artisan/storefront/internal/application/cart"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.Service
	badge       *cartapp.BadgeProjection
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.Service, badge *cartapp.BadgeProjection) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		badge:       badge,
	}
}

// BadgeResponse carries the item count shown on the cart badge
type BadgeResponse struct {
	CartID    string `json:"cart_id"`
	ItemCount int    `json:"item_count"`
}

func (h *CartHandler) cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create creates a new empty cart
func (h *CartHandler) Create(c *gin.Context) {
	cart, err := h.cartService.Create(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, cart)
}

// Get retrieves a cart by ID
func (h *CartHandler) Get(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// AddItem adds a product to the cart, or increments its quantity when the
// product is already present
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cartID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// UpdateQuantity adjusts a line quantity by a signed delta, clamped to a
// minimum of one
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req cartapp.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), cartID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// RemoveItem removes a product line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), cartID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Badge returns the item count maintained by the badge projection.
// Served from the event-driven read model, not the cart aggregate.
func (h *CartHandler) Badge(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}

	h.Success(c, BadgeResponse{
		CartID:    cartID.String(),
		ItemCount: h.badge.Count(cartID),
	})
}

// Clear removes all lines from the cart
func (h *CartHandler) Clear(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Clear(c.Request.Context(), cartID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}
