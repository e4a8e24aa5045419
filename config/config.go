// Package config loads runtime settings for the stationtime binaries from the
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxStations bounds a served table to about 200 MB.
const DefaultMaxStations = 5000

// Config holds application configuration
type Config struct {
	// Database (optional; an empty DBHost disables the network store)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Server
	ServerPort string
	GinMode    string

	// Audit compares wave tables with true shortest times.
	Audit bool
	// AuditMaxStations skips audits of larger networks.
	AuditMaxStations int
	// MaxStations rejects larger networks in the HTTP service; 0 disables the limit.
	MaxStations int
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "stationtime"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		Audit:            getEnvBool("STATIONTIME_AUDIT", false),
		AuditMaxStations: getEnvInt("STATIONTIME_AUDIT_MAX_STATIONS", 500),
		MaxStations:      getEnvInt("STATIONTIME_MAX_STATIONS", DefaultMaxStations),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		log.Printf("WARNING: Unknown GIN_MODE: %s (using release)", cfg.GinMode)
		cfg.GinMode = "release"
	}

	if cfg.AuditMaxStations < 0 {
		log.Printf("WARNING: STATIONTIME_AUDIT_MAX_STATIONS=%d is negative, using 0", cfg.AuditMaxStations)
		cfg.AuditMaxStations = 0
	}

	if cfg.MaxStations < 0 {
		log.Printf("WARNING: STATIONTIME_MAX_STATIONS=%d is negative, using %d", cfg.MaxStations, DefaultMaxStations)
		cfg.MaxStations = DefaultMaxStations
	}

	return cfg
}

// StoreEnabled reports whether a database host is configured.
func (c *Config) StoreEnabled() bool {
	return c.DBHost != ""
}

// DSN returns the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("WARNING: %s=%q is not a boolean, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("WARNING: %s=%q is not an integer, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
