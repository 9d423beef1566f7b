package middleware

import (
	"net/http"
	"strings"

	"github.com/artisan/storefront/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session context keys
const (
	SessionClaimsKey = "session_claims"
	SessionIDKey     = "session_id"
	SessionNameKey   = "session_name"
	AuthHeaderKey    = "Authorization"
	BearerPrefix     = "Bearer "
)

// SessionMiddleware validates the bearer token and stores session claims in
// the gin context. Requests without a valid token are rejected with 401.
func SessionMiddleware(jwtService *auth.JWTService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			rejectUnauthorized(c, logger, auth.ErrInvalidToken, "missing bearer token")
			return
		}

		claims, err := jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			rejectUnauthorized(c, logger, err, "token validation failed")
			return
		}

		storeClaims(c, claims)
		c.Next()
	}
}

// OptionalSessionMiddleware extracts session claims when a valid bearer
// token is present, and passes the request through anonymously otherwise.
// Cart and checkout routes work for anonymous visitors, so this is the
// default for the API group.
func OptionalSessionMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		storeClaims(c, claims)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(AuthHeaderKey)
	if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	if tokenString == "" {
		return "", false
	}
	return tokenString, true
}

func storeClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(SessionClaimsKey, claims)
	c.Set(SessionIDKey, claims.SessionID)
	c.Set(SessionNameKey, claims.Name)
}

func rejectUnauthorized(c *gin.Context, logger *zap.Logger, err error, message string) {
	if logger != nil {
		logger.Warn("session authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch err {
	case auth.ErrExpiredToken:
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case auth.ErrInvalidToken:
		errorCode = "TOKEN_INVALID"
		errorMessage = "Invalid token"
	case auth.ErrTokenNotYetValid:
		errorCode = "TOKEN_INVALID"
		errorMessage = "Token is not yet valid"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCode,
			"message": errorMessage,
		},
	})
}

// GetSessionClaims retrieves session claims from gin.Context, or nil for
// anonymous requests.
func GetSessionClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(SessionClaimsKey); exists {
		if sessionClaims, ok := claims.(*auth.Claims); ok {
			return sessionClaims
		}
	}
	return nil
}

// GetSessionID retrieves the session ID from context as a UUID pointer.
// Returns nil for anonymous requests or malformed IDs.
func GetSessionID(c *gin.Context) *uuid.UUID {
	claims := GetSessionClaims(c)
	if claims == nil {
		return nil
	}
	id, err := claims.GetSessionUUID()
	if err != nil {
		return nil
	}
	return &id
}
