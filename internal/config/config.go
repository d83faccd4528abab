package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://peakops.club"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Static assets (generated lead-magnet PDFs live under <StaticDir>/pdfs)
	StaticDir string `env:"STATIC_DIR" envDefault:"web/static"`

	// Submission forwarding. An empty URL is a valid state: submissions are
	// then handled locally without any outbound call.
	WebhookURL     string        `env:"G_SHEETS_WEBHOOK_URL"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`

	// Rate limiting on public form endpoints
	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	FormRateRPS      float64 `env:"FORM_RATE_RPS" envDefault:"1"`
	FormRateBurst    int     `env:"FORM_RATE_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for a .env file; godotenv does not overwrite
	// variables that are already set.
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
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

	// Canonical URLs and sitemap entries are built by joining BaseURL with a
	// path, so a trailing slash would double up.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/site.log"
		} else {
			cfg.LogFile = "./logs/site.log"
		}
	}

	return cfg, nil
}
