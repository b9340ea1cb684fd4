// Package config loads service configuration from the environment, with a
// .env file picked up in development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port           string
	Env            string   // "development" | "production"
	AllowedOrigins []string // CORS origins for the frontend
	SeedDemoData   bool     // load the demo fixture set at startup
}

// Load reads configuration from the environment. A missing .env file is
// not an error — production deployments set real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
