package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ServerConfig holds API settings loaded from the environment.
type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	StoreBackend   string
	RedisAddr      string
	ScheduleTTL    time.Duration
}

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// FromEnv loads server configuration from environment variables.
func FromEnv() (*ServerConfig, error) {
	ttl, err := time.ParseDuration(getEnv("SCHEDULE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("SCHEDULE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SCHEDULE_TTL must be > 0, got %s", ttl)
	}
	cfg := &ServerConfig{
		Port:           getEnv("API_PORT", "8080"),
		Env:            getEnv("API_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		ScheduleTTL:    ttl,
	}
	switch cfg.StoreBackend {
	case StoreMemory, StoreRedis:
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreMemory, StoreRedis, cfg.StoreBackend)
	}
	if cfg.StoreBackend == StoreRedis && cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}
	return cfg, nil
}

func (c *ServerConfig) Production() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
