package middleware

import (
	"time"

	"github.com/meriadock/meriadock-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with outcome and latency.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("%s %s | %d | %s | %s | %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.ClientIP(),
			c.GetString("RequestID"),
			time.Since(start),
		)
	}
}
