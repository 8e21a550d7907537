package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// API keys. Either may be empty at startup; the pipeline reports a
	// missing key per invocation instead of refusing to boot.
	GoogleAPIKey string
	WunderKey    string

	// RegionBias is an optional ccTLD code (eg. uk, nz) that biases geocode
	// results towards that country.
	RegionBias string

	// DBPath locates the sqlite file holding saved locations.
	DBPath string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// CacheResyncInterval controls the periodic reload of the location cache
	// from the database.
	CacheResyncInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.WunderKey = os.Getenv("WUNDERGROUND_API_KEY")
	cfg.RegionBias = os.Getenv("GEOCODE_REGION_BIAS")

	cfg.DBPath = getenvDefault("DB_PATH", "weathercmd.db")
	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	resyncStr := getenvDefault("CACHE_RESYNC_INTERVAL", "15m")
	resync, err := time.ParseDuration(resyncStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_RESYNC_INTERVAL: %w", err)
	}
	cfg.CacheResyncInterval = resync

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
