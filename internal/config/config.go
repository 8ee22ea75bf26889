// Package config provides application configuration loading from the
// environment. Part of the composition root; contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string

	// JWTAccessSecret enables the optional identity middleware. When empty,
	// every request is treated as anonymous and persistence is skipped.
	JWTAccessSecret string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	// AppBaseURL is the public base URL used for hosted-view links embedded
	// in the report branding page QR code.
	AppBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	RedisAddr       string
	PricingFeedURL  string
	PricingCacheTTL time.Duration

	MinioEndpoint         string
	MinioAccessKey        string
	MinioSecretKey        string
	MinioUseSSL           bool
	MinioMaxFileSize      int64
	MinioBucketReportPDFs string

	DefaultLanguage string
	DefaultCurrency string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		JWTAccessSecret: getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:    corsAllowAll,
		CORSOrigins:     corsOrigins,
		CORSAllowCreds:  strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:4200"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		PricingFeedURL:  getEnv("PRICING_FEED_URL", ""),
		PricingCacheTTL: mustDuration(getEnv("PRICING_CACHE_TTL", "24h")),

		MinioEndpoint:         getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:        getEnv("MINIO_SECRET_KEY", ""),
		MinioUseSSL:           strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioMaxFileSize:      mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "26214400")),
		MinioBucketReportPDFs: getEnv("MINIO_BUCKET_REPORT_PDFS", "report-pdfs"),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.PricingCacheTTL <= 0 {
		cfg.PricingCacheTTL = 24 * time.Hour
	}

	return cfg, nil
}

// ── Getter methods satisfying the platform config interfaces ──────────────────

// GetDatabaseURL implements the database config interface.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// GetJWTAccessSecret implements the JWT config interface for httpkit.
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// GetMinIOEndpoint implements the storage config interface.
func (c *Config) GetMinIOEndpoint() string { return c.MinioEndpoint }

// GetMinIOAccessKey implements the storage config interface.
func (c *Config) GetMinIOAccessKey() string { return c.MinioAccessKey }

// GetMinIOSecretKey implements the storage config interface.
func (c *Config) GetMinIOSecretKey() string { return c.MinioSecretKey }

// GetMinIOUseSSL implements the storage config interface.
func (c *Config) GetMinIOUseSSL() bool { return c.MinioUseSSL }

// GetMinIOMaxFileSize implements the storage config interface.
func (c *Config) GetMinIOMaxFileSize() int64 { return c.MinioMaxFileSize }

// IsMinIOEnabled reports whether archive storage is configured.
func (c *Config) IsMinIOEnabled() bool {
	return c.MinioEndpoint != "" && c.MinioAccessKey != "" && c.MinioSecretKey != ""
}

// IsGeminiEnabled reports whether the AI analysis client is configured.
func (c *Config) IsGeminiEnabled() bool { return c.GeminiAPIKey != "" }

// IsLivePricingEnabled reports whether the live pricing feed is configured.
func (c *Config) IsLivePricingEnabled() bool {
	return c.PricingFeedURL != "" && c.RedisAddr != ""
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

func mustInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
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
