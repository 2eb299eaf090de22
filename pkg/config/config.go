package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string `env:"PORT" envDefault:"8080"`
	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	DBDriver          string        `env:"DB_DRIVER" envDefault:"sqlite3"`
	DatabasePath      string        `env:"DATABASE_PATH" envDefault:"db.sqlite3"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBLogQueries      bool          `env:"DB_LOG_QUERIES" envDefault:"false"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	RateLimitEnabled bool                       `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitStore   string                     `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	RateLimitConfigs map[string]RateLimitConfig `env:"-"`
	RedisAddr        string                     `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string                     `env:"REDIS_PASSWORD"`

	EnforceHTTPS       bool     `env:"ENFORCE_HTTPS" envDefault:"false"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	OTLPEndpoint   string `env:"OTLP_ENDPOINT"`
	LokiURL        string `env:"LOKI_URL"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"pollsapp"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"1.0.0"`
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// DefaultRateLimits holds per-route limits keyed by "METHOD /path" or "/path".
func DefaultRateLimits() map[string]RateLimitConfig {
	return map[string]RateLimitConfig{
		"GET /questions": {
			Requests: 100,
			Window:   time.Minute,
		},
		"GET /questions/:id": {
			Requests: 100,
			Window:   time.Minute,
		},
		"/questions": {
			Requests: 30,
			Window:   time.Minute,
		},
		"/choices": {
			Requests: 30,
			Window:   time.Minute,
		},
		"GET /todos": {
			Requests: 100,
			Window:   time.Minute,
		},
		"/todos": {
			Requests: 30,
			Window:   time.Minute,
		},
		"default": {
			Requests: 60,
			Window:   time.Minute,
		},
	}
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Port:               "8080",
		MetricsPort:        "9090",
		Environment:        "development",
		DBDriver:           "sqlite3",
		DatabasePath:       "db.sqlite3",
		DBMaxOpenConns:     10,
		DBMaxIdleConns:     5,
		DBConnMaxLifetime:  30 * time.Minute,
		RateLimitEnabled:   true,
		RateLimitStore:     "memory",
		RateLimitConfigs:   DefaultRateLimits(),
		RedisAddr:          "localhost:6379",
		EnforceHTTPS:       false,
		CORSAllowedOrigins: []string{"*"},
		ServiceName:        "pollsapp",
		ServiceVersion:     "1.0.0",
	}
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*AppConfig, error) {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load(files...)

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.RateLimitConfigs = DefaultRateLimits()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) Validate() error {
	switch c.DBDriver {
	case "sqlite3":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.RateLimitStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported RATE_LIMIT_STORE %q", c.RateLimitStore)
	}

	return nil
}

// DSN is the data source name for the configured driver.
func (c *AppConfig) DSN() string {
	if c.DBDriver == "postgres" {
		return c.DatabaseURL
	}

	return c.DatabasePath
}

func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
