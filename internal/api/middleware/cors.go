package middleware

import (
	"net/http"
	"strings"

	"github.com/meriadock/meriadock-api/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS middleware. Allowed origins come from configuration; development mode
// accepts any origin so the site can be previewed locally.
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if cfg.Environment == "development" || cfg.Environment == "" {
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		} else {
			if cfg.AllowedOrigins != "" {
				originAllowed := false
				for _, allowed := range strings.Split(cfg.AllowedOrigins, ",") {
					allowed = strings.TrimSpace(allowed)
					if (allowed == "*") || (origin == allowed) {
						originAllowed = true
						c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
						break
					}
				}

				if !originAllowed && !strings.Contains(cfg.AllowedOrigins, "*") {
					c.Status(http.StatusForbidden)
					c.Abort()
					return
				}
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
