// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SessionBackendPostgres = "postgres"
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"

	DefaultSessionSecret = "change_me_local_secret"
)

type Config struct {
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`

	DatabaseURL       string        `mapstructure:"database_url"`
	DBMaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	DBMaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`

	SessionSecret        string        `mapstructure:"session_secret"`
	SessionTTL           time.Duration `mapstructure:"session_ttl"`
	SessionBackend       string        `mapstructure:"session_backend"`
	SessionPurgeInterval time.Duration `mapstructure:"session_purge_interval"`
	RedisURL             string        `mapstructure:"redis_url"`

	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`

	StaticDir      string `mapstructure:"static_dir"`
	LogLevel       string `mapstructure:"log_level"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`

	VisitQueueSize int `mapstructure:"visit_queue_size"`
	VisitWorkers   int `mapstructure:"visit_workers"`
}

// Load reads .env files (missing files are fine) and then the process environment.
// Environment variables always win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Keys without a sensible default are still registered so AutomaticEnv picks them up on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("gin_mode", "release")

	v.SetDefault("database_url", "")
	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", "5m")

	v.SetDefault("session_secret", DefaultSessionSecret)
	v.SetDefault("session_ttl", "24h")
	v.SetDefault("session_backend", SessionBackendPostgres)
	v.SetDefault("session_purge_interval", "1h")
	v.SetDefault("redis_url", "")

	v.SetDefault("admin_email", "")
	v.SetDefault("admin_password", "")

	v.SetDefault("static_dir", "public")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_enabled", true)

	v.SetDefault("visit_queue_size", 256)
	v.SetDefault("visit_workers", 2)
}

func (c *Config) Validate() error {
	switch c.SessionBackend {
	case SessionBackendPostgres, SessionBackendMemory:
	case SessionBackendRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when SESSION_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}

	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.VisitWorkers < 1 {
		return errors.New("VISIT_WORKERS must be at least 1")
	}
	if c.VisitQueueSize < 1 {
		return errors.New("VISIT_QUEUE_SIZE must be at least 1")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// HasBootstrapAdmin reports whether an operator-provisioned admin account is configured.
func (c *Config) HasBootstrapAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// UsesDefaultSecret is true when SESSION_SECRET was never set.
func (c *Config) UsesDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}
