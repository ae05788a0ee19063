package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is parsed once at
// process start and passed by parameter; business logic never reads the
// environment directly.
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	LogFile        string `env:"LOG_FILE"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// SMTP Transport
	SMTPHost   string `env:"SMTP_HOST"`
	SMTPPort   int    `env:"SMTP_PORT"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`
	SMTPSecure bool   `env:"SMTP_SECURE"`

	// Mail routing overrides. Recipients and senders are resolved through
	// the fallback chains in resolve.go, not read from these fields directly.
	EmailFrom        string `env:"EMAIL_FROM"`
	EmailTo          string `env:"EMAIL_TO"`
	SMTPTo           string `env:"SMTP_TO"`
	SMTPToAddress    string `env:"SMTP_TO_ADDRESS"`
	VinculacionEmail string `env:"VINCULACION_EMAIL"`
	EscucharteTo     string `env:"QUEREMOS_ESCUCHARTE_TO"`
	EscucharteFrom   string `env:"QUEREMOS_ESCUCHARTE_FROM"`

	// reCAPTCHA Configuration
	RecaptchaSecret string `env:"RECAPTCHA_SECRET_KEY"`

	// Public site
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. Try multiple locations.
	envLocations := []string{
		"internal/config/env/.env.production",
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// HasSMTP reports whether a mail transport can be constructed at all.
func (c *Config) HasSMTP() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0
}

// HasSMTPAuth reports whether authenticated SMTP credentials are configured.
func (c *Config) HasSMTPAuth() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

// PublicHost returns the bare hostname of the public site, used to derive a
// default sender address for the feedback channel.
func (c *Config) PublicHost() string {
	host := c.PublicBaseURL
	if host == "" {
		return defaultDomain
	}
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return host
}
