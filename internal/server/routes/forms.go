package routes

import (
	"net/http"

	"github.com/meriadock/meriadock-api/internal/api/dto/v1/forms"

	"github.com/gin-gonic/gin"
)

// nonPostMethods are answered with 405 on the relay paths. OPTIONS is left to
// the CORS middleware for preflight.
var nonPostMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
}

// SetupFormRoutes configures the two form relay endpoints (public)
func SetupFormRoutes(api *gin.RouterGroup, h *Handlers) {
	api.POST("/forms/send", h.Forms.Submit)
	api.Match(nonPostMethods, "/forms/send", generalMethodNotAllowed)

	api.POST("/queremos-escucharte/send", h.Feedback.Submit)
	api.Match(nonPostMethods, "/queremos-escucharte/send", feedbackMethodNotAllowed)
}

func generalMethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, forms.GeneralFormResponse{Message: "Method not allowed"})
}

func feedbackMethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, forms.FeedbackResponse{OK: false, Message: "Method not allowed. Use POST."})
}
