package handlers

import (
	"net/http"

	"github.com/meriadock/meriadock-api/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness. There are no backing services to probe; both
// external collaborators (siteverify, SMTP) are contacted per request only.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "meriadock-api",
		"version": version.Version,
	})
}
