package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGeoapify = "geoapify"
	ProviderOverpass = "overpass"

	PlaceholderAPIKey = "YOUR_GEOAPIFY_API_KEY"
)

type Config struct {
	GeoapifyKey     string
	GeoapifyBaseURL string
	PlacesProvider  string
	OverpassURL     string
	HTTPTimeout     time.Duration
	Host            string
	Port            int
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads a .env file if one exists, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: Failed to load .env file: %v", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		GeoapifyKey:     getEnv("GEOAPIFY_KEY", PlaceholderAPIKey),
		GeoapifyBaseURL: getEnv("GEOAPIFY_BASE_URL", "https://api.geoapify.com"),
		PlacesProvider:  getEnv("PLACES_PROVIDER", ProviderGeoapify),
		OverpassURL:     getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		Host:            getEnv("HOST", "0.0.0.0"),
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d out of range", port)
	}
	cfg.Port = port

	switch cfg.PlacesProvider {
	case ProviderGeoapify, ProviderOverpass:
	default:
		return nil, fmt.Errorf("invalid PLACES_PROVIDER %q: want %q or %q",
			cfg.PlacesProvider, ProviderGeoapify, ProviderOverpass)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
