package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in the ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application
type Config struct {
	// Storage
	DBPath        string `conf:"default:lagerbestand.db,env:LAGER_DB_PATH"`
	DBBusyTimeout int    `conf:"default:5000,env:LAGER_DB_BUSY_TIMEOUT_MS"`

	// HTTP
	HTTPPort           string `conf:"default:8080,env:HTTP_PORT"`
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Application
	ServiceName string `conf:"default:lagerbestand,env:SERVICE_NAME"`
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|production,env:ENVIRONMENT"`

	// Tracing
	TracingEnabled bool   `conf:"default:false,env:TRACING_ENABLED"`
	JaegerEndpoint string `conf:"default:http://localhost:14268/api/traces,env:JAEGER_ENDPOINT"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// AllowedOrigins splits the configured CORS origin list.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
