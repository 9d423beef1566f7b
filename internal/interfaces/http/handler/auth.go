package handler

import (
	identityapp "github.com/artisan/storefront/internal/application/identity"
	"github.com/artisan/storefront/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles session login, logout and profile endpoints
type AuthHandler struct {
	BaseHandler
	identityService *identityapp.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identityService *identityapp.Service) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
	}
}

// Login starts a named session from an email or plain identifier and
// returns a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.identityService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// LoginGuest starts an anonymous guest session and returns a bearer token
func (h *AuthHandler) LoginGuest(c *gin.Context) {
	result, err := h.identityService.LoginGuest(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Logout ends the current session. Requests without a session are a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == nil {
		h.NoContent(c)
		return
	}

	if err := h.identityService.Logout(c.Request.Context(), *sessionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetSession returns the current session profile
func (h *AuthHandler) GetSession(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	session, err := h.identityService.Get(c.Request.Context(), *sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}

// UpdatePlan changes the subscription plan attached to the current session
func (h *AuthHandler) UpdatePlan(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	session, err := h.identityService.UpdatePlan(c.Request.Context(), *sessionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}
