package server

import (
	"io"

	"github.com/meriadock/meriadock-api/internal/api/handlers"
	"github.com/meriadock/meriadock-api/internal/config"
	"github.com/meriadock/meriadock-api/internal/logging"
	"github.com/meriadock/meriadock-api/internal/server/routes"
	"github.com/meriadock/meriadock-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	// Always add recovery middleware for panic handling
	router.Use(gin.Recovery())

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires services, handlers and routes.
func (s *Server) Init() {
	logger := logging.GetLogger()

	verifier := service.NewRecaptchaService(s.cfg.RecaptchaSecret)
	mailer := service.NewSMTPMailer(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.SMTPSecure,
	)

	h := &routes.Handlers{
		Forms:    handlers.NewFormsHandler(s.cfg, verifier, mailer),
		Feedback: handlers.NewFeedbackHandler(s.cfg, verifier, mailer),
		Health:   handlers.NewHealthHandler(),
	}

	routes.SetupGlobalMiddleware(s.router, s.cfg, logger)
	routes.Setup(s.router, h)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
