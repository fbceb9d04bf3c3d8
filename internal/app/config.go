package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Session drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	// PageHost is the host the front end was reached on. The backend is
	// always port 8080 of that host (or of localhost for loopback).
	PageHost string `env:"CAMPUS_PAGE_HOST, default=localhost"`

	SessionDriver string `env:"CAMPUS_SESSION_DRIVER, default=sqlite"`
	SessionFile   string `env:"CAMPUS_SESSION_FILE, default=campus-session.db"`
	RedisURL      string `env:"CAMPUS_REDIS_URL, default=redis://localhost:6379/0"`
	RedisPrefix   string `env:"CAMPUS_REDIS_PREFIX, default=campus:"`

	// MaxRPS throttles outgoing requests. Zero disables throttling.
	MaxRPS float64 `env:"CAMPUS_MAX_RPS, default=0"`
	Burst  int     `env:"CAMPUS_BURST, default=1"`

	// MetricsFile, when set, receives request metrics in the Prometheus
	// text format on exit.
	MetricsFile string `env:"CAMPUS_METRICS_FILE"`

	Env       string `env:"ENV, default=dev"`
	LogLevel  string `env:"LOG_LEVEL, default=warn"`
	LogFormat string `env:"LOG_FORMAT, default=text"`
}

// LoadConfig reads a .env file if present, then the process environment.
func LoadConfig(ctx context.Context) (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}
	return loadConfig(ctx, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.SessionDriver = strings.ToLower(strings.TrimSpace(cfg.SessionDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.SessionDriver {
	case DriverSQLite:
		if c.SessionFile == "" {
			return errors.New("CAMPUS_SESSION_FILE is required for the sqlite driver")
		}
	case DriverRedis:
		if c.RedisURL == "" {
			return errors.New("CAMPUS_REDIS_URL is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown session driver %q", c.SessionDriver)
	}

	if c.MaxRPS < 0 {
		return fmt.Errorf("CAMPUS_MAX_RPS must not be negative, got %v", c.MaxRPS)
	}
	if c.MaxRPS > 0 && c.Burst < 1 {
		return fmt.Errorf("CAMPUS_BURST must be at least 1 when CAMPUS_MAX_RPS is set, got %d", c.Burst)
	}
	return nil
}
