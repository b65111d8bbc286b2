package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported cache drivers.
const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
	CacheNone   = "none"
)

// Config holds the application settings read from the environment.
type Config struct {
	AppPort string

	DatabaseDriver      string
	DatabaseDSN         string
	DatabaseAutoMigrate bool
	DatabaseLogLevel    string

	CacheDriver string
	RedisURL    string
	CacheTTL    time.Duration

	RabbitMQURL string
}

// Load reads the configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=library port=5432 sslmode=disable")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)
	v.SetDefault("DATABASE_LOG_LEVEL", "warn")
	v.SetDefault("CACHE_DRIVER", CacheRedis)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("CACHE_TTL", time.Hour)
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:             v.GetString("APP_PORT"),
		DatabaseDriver:      v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:         v.GetString("DATABASE_DSN"),
		DatabaseAutoMigrate: v.GetBool("DATABASE_AUTO_MIGRATE"),
		DatabaseLogLevel:    v.GetString("DATABASE_LOG_LEVEL"),
		CacheDriver:         v.GetString("CACHE_DRIVER"),
		RedisURL:            v.GetString("REDIS_URL"),
		CacheTTL:            v.GetDuration("CACHE_TTL"),
		RabbitMQURL:         v.GetString("RABBITMQ_URL"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers and unusable values.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	switch c.CacheDriver {
	case CacheRedis, CacheMemory, CacheNone:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.CacheDriver)
	}
	if c.CacheDriver != CacheNone && c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}
