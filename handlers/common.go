package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"devlink/apperr"
	"devlink/middleware"
)

// Default avatar for users who register without one.
const fallbackAvatar = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"

const storeTimeout = 10 * time.Second

func storeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

// respondError is the single funnel from the error taxonomy to HTTP
// responses. Underlying causes are logged here and never sent to the
// client.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			log.Printf("[%s %s] %v", c.Request.Method, c.Request.URL.Path, appErr.Cause)
		}
		c.JSON(apperr.ToHTTPStatus(appErr), appErr.ToJSON())
		return
	}

	log.Printf("[%s %s] unexpected error: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// identity reads the user id the auth gate stored on the context. The
// gate runs on every private route, so an empty value means a wiring
// bug; fail closed anyway.
func identity(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthenticated",
			"message": "Not authenticated",
		})
		return "", false
	}
	return userID, true
}
