package handler

import (
	checkoutapp "github.com/artisan/storefront/internal/application/checkout"
	"github.com/artisan/storefront/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles order and subscription checkout endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreateOrder opens an order checkout for a cart
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req checkoutapp.CreateOrderCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.checkoutService.CreateOrder(c.Request.Context(), req, middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// CreateSubscription opens a subscription checkout for a plan, optionally
// carrying a cart to be cleared on settlement
func (h *CheckoutHandler) CreateSubscription(c *gin.Context) {
	var req checkoutapp.CreateSubscriptionCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.checkoutService.CreateSubscription(c.Request.Context(), req, middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns the current checkout state; clients poll this while a
// confirmation settles
func (h *CheckoutHandler) Get(c *gin.Context) {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checkout ID format")
		return
	}

	result, err := h.checkoutService.Get(c.Request.Context(), checkoutID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Confirm triggers settlement of the checkout. Settlement runs in the
// background; the returned state reflects the transition to processing.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	checkoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid checkout ID format")
		return
	}

	result, err := h.checkoutService.Confirm(c.Request.Context(), checkoutID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
