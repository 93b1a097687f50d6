package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string
	StaticDir  string

	// Database configuration
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration, used for rate limiting when set
	RedisURL      string
	RedisPassword string

	// JWT configuration. An empty secret means a random per-process key.
	JWTSecret string

	// Logging
	LogLevel  string
	LogFormat string

	ExposeInternalErrors bool
	DebugRoutes          bool
	CORSAllowedOrigins   []string
	RateLimitPerMinute   int

	// Seeding
	SeedOnStart bool
	SeedSource  string
	AWSRegion   string
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig reads configuration from an optional .env file, the process
// environment and, for secrets, files under SECRETS_DIR.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	env := GetEnvironment()
	cfg := &Config{
		Environment: env,
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		StaticDir:   getEnv("STATIC_DIR", "."),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "database.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: getSecret("DB_PASSWORD", "db_password"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisPassword: getSecret("REDIS_PASSWORD", "redis_password"),

		JWTSecret: getSecret("JWT_SECRET", "jwt_secret"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		SeedSource: os.Getenv("SEED_SOURCE"),
		AWSRegion:  os.Getenv("AWS_REGION"),
	}

	var err error
	if cfg.ExposeInternalErrors, err = getBool("EXPOSE_INTERNAL_ERRORS", env != Production); err != nil {
		return nil, err
	}
	if cfg.DebugRoutes, err = getBool("DEBUG_ROUTES", false); err != nil {
		return nil, err
	}
	if cfg.SeedOnStart, err = getBool("SEED_ON_START", true); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 0); err != nil {
		return nil, err
	}
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getSecret prefers the environment variable and falls back to a secret file.
func getSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, ValidationError{Field: key, Message: fmt.Sprintf("invalid boolean %q", v)}
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("invalid integer %q", v)}
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
