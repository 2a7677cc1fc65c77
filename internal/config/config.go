// Package config loads service configuration from environment variables.
//
// Values are parsed with github.com/caarlos0/env. A .env file in the working
// directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	TaskStoreMemory = "memory"
	TaskStoreSQL    = "sql"
)

type Config struct {
	// Env is "development", "production" or "test".
	Env      string `env:"ENV"       envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// TaskStore selects the task backend: "memory" (lost on restart) or "sql".
	TaskStore string `env:"TASK_STORE" envDefault:"memory"`

	HTTP  HTTPConfig  `envPrefix:"HTTP_"`
	DB    DBConfig    `envPrefix:"DB_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	Kafka KafkaConfig `envPrefix:"KAFKA_"`
	Auth  AuthConfig  `envPrefix:"AUTH_"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" envDefault:":8000"`

	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit        float64       `env:"RATE_LIMIT"         envDefault:"10"`
	RateBurst        int           `env:"RATE_BURST"         envDefault:"30"`
	RateExpiresIn    time.Duration `env:"RATE_EXPIRES_IN"    envDefault:"3m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// AuthConfig controls JWT issuing and the guard on JSON write routes.
type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"  envDefault:"24h"`
	// Required puts the JWT guard in front of create/update/delete routes.
	Required bool `env:"REQUIRED" envDefault:"false"`
}

// Load reads .env (if any) and the environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	switch c.TaskStore {
	case TaskStoreMemory, TaskStoreSQL:
	default:
		return fmt.Errorf("unsupported TASK_STORE %q", c.TaskStore)
	}

	if c.Auth.Required && c.Auth.JWTSecret == "" {
		return errors.New("AUTH_REQUIRED needs AUTH_JWT_SECRET")
	}
	if c.HTTP.RateLimitEnabled && (c.HTTP.RateLimit <= 0 || c.HTTP.RateBurst <= 0) {
		return errors.New("HTTP_RATE_LIMIT and HTTP_RATE_BURST must be positive")
	}
	return nil
}

// IsTest reports whether the service runs under ENV=test.
func (c *Config) IsTest() bool {
	return c.Env == "test"
}
