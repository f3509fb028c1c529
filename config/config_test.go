package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COMPOUND_HTTP_ADDR", "")
	t.Setenv("COMPOUND_REDIS_ADDR", "")
	t.Setenv("COMPOUND_OTEL_ENDPOINT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if cfg.CacheTTL != time.Hour {
		t.Fatalf("CacheTTL = %s, want 1h", cfg.CacheTTL)
	}
	if cfg.RateLimitCapacity != 60 || cfg.RateLimitWindow != time.Minute {
		t.Fatalf("rate limit = %d/%s, want 60/1m", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
	if cfg.Locale != "en-US" || cfg.CurrencySymbol != "$" {
		t.Fatalf("currency = %s %s, want en-US $", cfg.Locale, cfg.CurrencySymbol)
	}
	if cfg.TracingEnabled() {
		t.Fatalf("TracingEnabled() = true, want false without endpoint")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COMPOUND_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("COMPOUND_REDIS_ADDR", "redis:6379")
	t.Setenv("COMPOUND_RATE_LIMIT_CAPACITY", "5")
	t.Setenv("COMPOUND_RATE_LIMIT_WINDOW", "30s")
	t.Setenv("COMPOUND_OTEL_ENDPOINT", "http://collector:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.RateLimitCapacity != 5 || cfg.RateLimitWindow != 30*time.Second {
		t.Fatalf("rate limit = %d/%s", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
	if !cfg.TracingEnabled() {
		t.Fatalf("TracingEnabled() = false, want true")
	}
}

func TestLoadTracingDisabled(t *testing.T) {
	t.Setenv("COMPOUND_OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("COMPOUND_OTEL_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TracingEnabled() {
		t.Fatalf("TracingEnabled() = true, want false")
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"COMPOUND_RATE_LIMIT_CAPACITY", "0"},
		{"COMPOUND_RATE_LIMIT_CAPACITY", "lots"},
		{"COMPOUND_SESSION_TTL", "-1m"},
		{"COMPOUND_CACHE_TTL", "forever"},
	}

	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() error = nil, want error")
			}
		})
	}
}
