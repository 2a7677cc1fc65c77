package config

import (
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig configures the product cache and order idempotency keys.
// An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	ProductTTL     time.Duration `env:"PRODUCT_TTL"     envDefault:"5m"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func NewRedisClient(c RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
}
