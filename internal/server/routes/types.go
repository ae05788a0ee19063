package routes

import (
	"github.com/meriadock/meriadock-api/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Forms    *handlers.FormsHandler
	Feedback *handlers.FeedbackHandler
	Health   *handlers.HealthHandler
}
