package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from COMPOUND_* environment variables.
type Config struct {
	HTTPAddr string `env:"COMPOUND_HTTP_ADDR" envDefault:":8080"`

	// RedisAddr selects the Redis ledger cache; empty keeps the cache in
	// memory.
	RedisAddr string        `env:"COMPOUND_REDIS_ADDR"`
	CacheTTL  time.Duration `env:"COMPOUND_CACHE_TTL" envDefault:"1h"`

	SessionTTL time.Duration `env:"COMPOUND_SESSION_TTL" envDefault:"30m"`

	RateLimitCapacity int           `env:"COMPOUND_RATE_LIMIT_CAPACITY" envDefault:"60"`
	RateLimitWindow   time.Duration `env:"COMPOUND_RATE_LIMIT_WINDOW"   envDefault:"1m"`

	ReadTimeout     time.Duration `env:"COMPOUND_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"COMPOUND_WRITE_TIMEOUT"    envDefault:"15s"`
	IdleTimeout     time.Duration `env:"COMPOUND_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"COMPOUND_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Locale         string `env:"COMPOUND_LOCALE"          envDefault:"en-US"`
	CurrencySymbol string `env:"COMPOUND_CURRENCY_SYMBOL" envDefault:"$"`

	OTelEndpoint string `env:"COMPOUND_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"COMPOUND_OTEL_ENABLED" envDefault:"true"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("COMPOUND_HTTP_ADDR must not be empty"))
	}
	if c.RateLimitCapacity <= 0 {
		errs = append(errs, fmt.Errorf("COMPOUND_RATE_LIMIT_CAPACITY must be positive, got %d", c.RateLimitCapacity))
	}
	if c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("COMPOUND_RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("COMPOUND_CACHE_TTL must not be negative, got %s", c.CacheTTL))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("COMPOUND_SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	return errors.Join(errs...)
}

// TracingEnabled reports whether spans should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTelEnabled && c.OTelEndpoint != ""
}
