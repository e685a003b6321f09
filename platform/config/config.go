// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CatalogConfig provides settings for the Booking Catalog Service client.
type CatalogConfig interface {
	GetCatalogBaseURL() string
	GetCatalogAPIKey() string
	GetCatalogTimeout() time.Duration
}

// DiscountConfig provides settings for the Discount Service client.
type DiscountConfig interface {
	GetDiscountBaseURL() string
	GetDiscountAPIKey() string
	GetDiscountTimeout() time.Duration
}

// BookingAPIConfig provides settings for the Booking Service client.
type BookingAPIConfig interface {
	GetBookingAPIBaseURL() string
	GetBookingAPIKey() string
	GetBookingAPITimeout() time.Duration
}

// SessionConfig provides settings for the in-memory booking session store.
type SessionConfig interface {
	GetSessionTTL() time.Duration
	GetSessionSweepInterval() time.Duration
}

// RateLimitConfig provides settings for the discount-apply rate limiter.
type RateLimitConfig interface {
	GetDiscountRateLimit() float64
	GetDiscountRateBurst() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	CatalogBaseURL       string
	CatalogAPIKey        string
	CatalogTimeout       time.Duration
	DiscountBaseURL      string
	DiscountAPIKey       string
	DiscountTimeout      time.Duration
	BookingAPIBaseURL    string
	BookingAPIKey        string
	BookingAPITimeout    time.Duration
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	DiscountRateLimit    float64
	DiscountRateBurst    int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CatalogConfig implementation
func (c *Config) GetCatalogBaseURL() string        { return c.CatalogBaseURL }
func (c *Config) GetCatalogAPIKey() string         { return c.CatalogAPIKey }
func (c *Config) GetCatalogTimeout() time.Duration { return c.CatalogTimeout }

// DiscountConfig implementation
func (c *Config) GetDiscountBaseURL() string        { return c.DiscountBaseURL }
func (c *Config) GetDiscountAPIKey() string         { return c.DiscountAPIKey }
func (c *Config) GetDiscountTimeout() time.Duration { return c.DiscountTimeout }

// BookingAPIConfig implementation
func (c *Config) GetBookingAPIBaseURL() string        { return c.BookingAPIBaseURL }
func (c *Config) GetBookingAPIKey() string            { return c.BookingAPIKey }
func (c *Config) GetBookingAPITimeout() time.Duration { return c.BookingAPITimeout }

// SessionConfig implementation
func (c *Config) GetSessionTTL() time.Duration           { return c.SessionTTL }
func (c *Config) GetSessionSweepInterval() time.Duration { return c.SessionSweepInterval }

// RateLimitConfig implementation
func (c *Config) GetDiscountRateLimit() float64 { return c.DiscountRateLimit }
func (c *Config) GetDiscountRateBurst() int     { return c.DiscountRateBurst }

// Load reads configuration from the environment, with .env support.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		CatalogBaseURL:       getEnv("CATALOG_BASE_URL", ""),
		CatalogAPIKey:        getEnv("CATALOG_API_KEY", ""),
		CatalogTimeout:       mustDuration(getEnv("CATALOG_TIMEOUT", "10s")),
		DiscountBaseURL:      getEnv("DISCOUNT_BASE_URL", ""),
		DiscountAPIKey:       getEnv("DISCOUNT_API_KEY", ""),
		DiscountTimeout:      mustDuration(getEnv("DISCOUNT_TIMEOUT", "10s")),
		BookingAPIBaseURL:    getEnv("BOOKING_API_BASE_URL", ""),
		BookingAPIKey:        getEnv("BOOKING_API_KEY", ""),
		BookingAPITimeout:    mustDuration(getEnv("BOOKING_API_TIMEOUT", "15s")),
		SessionTTL:           mustDuration(getEnv("SESSION_TTL", "2h")),
		SessionSweepInterval: mustDuration(getEnv("SESSION_SWEEP_INTERVAL", "5m")),
		DiscountRateLimit:    mustFloat(getEnv("DISCOUNT_RATE_LIMIT", "1")),
		DiscountRateBurst:    mustInt(getEnv("DISCOUNT_RATE_BURST", "5")),
	}

	if cfg.CatalogBaseURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if cfg.DiscountBaseURL == "" {
		return nil, fmt.Errorf("DISCOUNT_BASE_URL is required")
	}
	if cfg.BookingAPIBaseURL == "" {
		return nil, fmt.Errorf("BOOKING_API_BASE_URL is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
