package middleware

import (
	"net/http"
	"strings"

	"shotz/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates admin endpoints behind a live admin session.
// Clients obtain the session token from the passcode login endpoint and send
// it as a bearer token.
func AdminAuthMiddleware(authSvc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if !authSvc.IsAuthenticated(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminToken", token)
		c.Set("isAdmin", true)
		c.Next()
	}
}
