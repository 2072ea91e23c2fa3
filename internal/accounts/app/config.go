package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	HasherBcrypt = "bcrypt"
	HasherArgon2 = "argon2"
)

var ErrMissingSecret = errors.New("config: SECRET is required")

type Config struct {
	Secret string // Required: HS256 signing key

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database path (default: ./accounts.db)
	DatabaseURL    string // PostgreSQL DSN, required for the postgres driver

	PasswordHasher string // bcrypt or argon2 (default: bcrypt)
	PepperFile     string // argon2 pepper path (default: ./pepper)

	RedisAddr     string // Optional: shared rate limit store
	RedisPassword string
	RedisDB       int

	TrustProxyHeaders bool // Key rate limits on X-Forwarded-For/X-Real-IP (default: false)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already
// set in the environment win.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Secret:              os.Getenv("SECRET"),
		DatabaseDriver:      strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "accounts.db"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		PasswordHasher:      strings.ToLower(getEnvOrDefault("PASSWORD_HASHER", HasherBcrypt)),
		PepperFile:          getEnvOrDefault("PEPPER_FILE", "pepper"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvIntOrDefault("REDIS_DB", 0),
		TrustProxyHeaders:   getEnvBoolOrDefault("TRUST_PROXY_HEADERS", false),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports the first setting the service cannot start with.
func (c Config) Validate() error {
	if c.Secret == "" {
		return ErrMissingSecret
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("config: DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	switch c.PasswordHasher {
	case HasherBcrypt, HasherArgon2:
	default:
		return fmt.Errorf("config: unknown PASSWORD_HASHER %q", c.PasswordHasher)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

// getEnvDurationOrDefault accepts a Go duration ("90s", "30m") or a bare
// integer number of minutes.
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
