package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Addr             string
	DBPath           string
	WorldBankBaseURL string
	PopulationYear   int
	HTTPTimeout      time.Duration
	LatestWins       bool
	TileURL          string
	TileAttribution  string
	Debug            bool
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Addr = getEnv("TIMEMAP_ADDR", ":8080")
	cfg.DBPath = getEnv("TIMEMAP_DB", getDefaultDBPath())
	cfg.WorldBankBaseURL = getEnv("TIMEMAP_WORLDBANK_URL", "https://api.worldbank.org/v2")
	cfg.PopulationYear = getEnvInt("TIMEMAP_POPULATION_YEAR", 2022)
	cfg.HTTPTimeout = getEnvDuration("TIMEMAP_HTTP_TIMEOUT", 0)
	cfg.LatestWins = getEnvBool("TIMEMAP_LATEST_WINS", true)
	cfg.TileURL = getEnv("TIMEMAP_TILE_URL", "https://tiles.stadiamaps.com/tiles/alidade_smooth_dark/{z}/{x}/{y}{r}.png")
	cfg.TileAttribution = getEnv("TIMEMAP_TILE_ATTRIBUTION", "&copy; Stadia Maps, &copy; OpenMapTiles, &copy; OpenStreetMap contributors")

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.StringVar(&cfg.WorldBankBaseURL, "worldbank-url", cfg.WorldBankBaseURL, "World Bank API base URL")
	flag.IntVar(&cfg.PopulationYear, "population-year", cfg.PopulationYear, "Year requested for population figures")
	flag.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "Timeout for outbound enrichment requests (0 = none)")
	flag.BoolVar(&cfg.LatestWins, "latest-wins", cfg.LatestWins, "Drop publishes older than the one on display")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable verbose debug logging")

	flag.Parse()

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getDefaultDBPath returns the default database path in the user's home
// directory, creating ~/.timemap if needed.
func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return "timemap.db"
	}

	dir := filepath.Join(home, ".timemap")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: Could not create .timemap directory, using current dir: %v", err)
		return "timemap.db"
	}

	return filepath.Join(dir, "timemap.db")
}
