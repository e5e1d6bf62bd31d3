package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"devlink/auth"
)

// ContextUserID is the gin context key the resolved identity is stored
// under for downstream handlers.
const ContextUserID = "userId"

// RequireAuth guards private operations. It extracts the bearer token
// from the Authorization header and verifies it with the codec. The
// gate fails closed: missing, malformed, expired and foreign-signed
// tokens all yield the same 401 body; the precise failure is only
// logged. It never touches the data stores.
func RequireAuth(codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip for OPTIONS requests (CORS preflight)
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthenticated",
				"message": "No authorization token provided",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthenticated",
				"message": "Format should be: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			log.Printf("[auth] token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthenticated",
				"message": "Token validation failed",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
