package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        string
	FeaturesSrc string // URL or path of the feature collection document
	SummarySrc  string // URL or path of the trip summary document
	JWTSecret   string
	AirportsDB  string // sqlite path for the airport index cache (cmd/build)
	Debug       bool
	RateLimit   int // requests per minute per IP, 0 disables
}

// Load reads configuration from the environment, with a .env file merged
// in when present
func Load() *Config {
	// ignore a missing .env
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenvDefault("PORT", ":8080"),
		FeaturesSrc: getenvDefault("FEATURES_SRC", "./site/trips.geojson"),
		SummarySrc:  getenvDefault("SUMMARY_SRC", "./site/summary.json"),
		JWTSecret:   getenvDefault("JWT_SECRET", "change-me-in-production"),
		AirportsDB:  getenvDefault("AIRPORTS_DB", "./data/airports.db"),
	}

	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	cfg.RateLimit = 600
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RateLimit = n
		}
	}

	return cfg
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
