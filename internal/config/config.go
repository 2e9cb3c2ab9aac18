package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-secret-change-me"

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set outside development")

type Config struct {
	AppEnv             string
	Port               string
	DBDriver           string // "sqlite" or "postgres"
	DatabaseURL        string
	RedisURL           string        // Optional, favorites cache is skipped when empty or unreachable
	FrontendURL        string        // Frontend base URL (for menu QR codes)
	CORSOrigins        []string      // Allowed browser origins, "*" allows all
	JWTSecret          string        // Secret key for JWT token signing
	JWTTTL             int           // JWT token expiration time in hours
	BcryptCost         int           // Fixed bcrypt work factor for password hashes
	RequestTimeout     time.Duration // Per-request deadline
	RateLimitRPS       float64       // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int           // Burst size for rate limiting
	RateLimitAuthRPS   float64       // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int           // Burst size for auth endpoints
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables or defaults")
	}

	appEnv := getEnv("APP_ENV", "development")

	// Only local development gets a built-in signing key.
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" && appEnv == "development" {
		jwtSecret = devJWTSecret
	}

	return &Config{
		AppEnv:             appEnv,
		Port:               getEnv("PORT", "3000"),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:        getEnv("DATABASE_URL", "file:data/kolbe.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		RedisURL:           getEnv("REDIS_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5500"),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"*"}),
		JWTSecret:          jwtSecret,
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 24),
		BcryptCost:         getEnvInt("BCRYPT_COST", 10),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 2),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 5),
	}
}

// IsDevelopment reports whether the server runs with development defaults
// (text logs, debug level, gin debug mode).
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
