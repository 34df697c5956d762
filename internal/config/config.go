package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting the server needs.
type Config struct {
	Port           string
	DatabaseURL    string
	GoogleClientID string
	AdminAPIKey    string
	CORSOrigins    []string
	Env            string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present. DATABASE_URL is the only hard requirement.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getenv("PORT", "5000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		CORSOrigins:    splitOrigins(getenv("CORS_ORIGIN", "http://localhost:3000")),
		Env:            getenv("APP_ENV", "development"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}

	return cfg, nil
}

// Production reports whether the server runs with production error masking.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// splitOrigins parses a comma-separated origin list, trimming whitespace and
// trailing slashes.
func splitOrigins(raw string) []string {
	var origins []string
	for _, p := range strings.Split(raw, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
