package middleware

import (
	"net/http"
	"strings"

	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the session token and restores the persisted
// Identity snapshot into the request context. The snapshot is adopted
// without re-validating credentials.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		sessionID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		identity, err := authUC.Restore(c.Request.Context(), sessionID)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if identity == nil {
			// Token is valid but the snapshot is gone (logout or expiry)
			response.Error(c, http.StatusUnauthorized, "Session expired", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeySessionID), sessionID)
		c.Set(string(domain.KeyUserID), identity.ID)
		c.Set(string(domain.KeyUserEmail), identity.Email)
		c.Set(string(domain.KeyUserRole), identity.Role)
		c.Set(string(domain.KeyIdentity), identity)

		c.Next()
	}
}

// CurrentIdentity extracts the restored Identity from the gin context.
func CurrentIdentity(c *gin.Context) *domain.Identity {
	v, ok := c.Get(string(domain.KeyIdentity))
	if !ok {
		return nil
	}
	identity, _ := v.(*domain.Identity)
	return identity
}
