package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Port            string
	LogLevel        string
	StaticDir       string
	AllowedOrigins  []string
	CacheBackend    string
	CacheSize       int
	RedisAddr       string
	CacheTTL        time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then builds the configuration from
// environment variables. Variables already set in the environment win over
// the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return NewConfig()
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "5001"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StaticDir:      getEnv("STATIC_DIR", "frontend/out"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheBackend:   strings.ToLower(getEnv("CACHE_BACKEND", CacheNone)),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
	}

	var err error
	if cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1024")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "10m")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR is required")
	}
	switch c.CacheBackend {
	case CacheNone:
	case CacheMemory:
		if c.CacheSize <= 0 {
			return fmt.Errorf("CACHE_SIZE must be positive, got %d", c.CacheSize)
		}
	case CacheRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
		if c.CacheTTL < 0 {
			return fmt.Errorf("CACHE_TTL must not be negative")
		}
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
