package middleware

import (
	"fmt"
	"net/http"

	"dad-circles-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", fmt.Sprint(recovered)).
			Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
