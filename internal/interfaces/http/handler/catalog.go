package handler

import (
	catalogapp "github.com/artisan/storefront/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles product and subscription plan endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListProducts returns the product catalog, optionally filtered by the
// category query parameter
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// GetProduct retrieves a single product by ID or catalog code
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	idParam := c.Param("id")

	if id, err := uuid.Parse(idParam); err == nil {
		product, err := h.catalogService.GetProduct(c.Request.Context(), id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, product)
		return
	}

	product, err := h.catalogService.GetProductByCode(c.Request.Context(), idParam)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListPlans returns all subscription plans
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans, err := h.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plans)
}

// GetPlan retrieves a subscription plan by its code
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	plan, err := h.catalogService.GetPlan(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}
