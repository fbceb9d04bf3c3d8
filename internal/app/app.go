package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/sessionstore"
	"github.com/aussiebroadwan/campus/pkg/sessionstore/drivers/memory"
	"github.com/aussiebroadwan/campus/pkg/sessionstore/drivers/redis"
	"github.com/aussiebroadwan/campus/pkg/sessionstore/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the client and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	store    sessionstore.Store
	registry *prometheus.Registry
	client   *campussdk.SDKClient
}

// New opens the session store and builds the SDK client. Logs go to logOut.
func New(ctx context.Context, cfg Config, logOut io.Writer) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "campus",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Output:  logOut,
		}),
		registry: prometheus.NewRegistry(),
	}

	if err := app.initStore(ctx); err != nil {
		return nil, err
	}

	app.initClient()
	return app, nil
}

func (app *Application) initStore(ctx context.Context) error {
	switch app.cfg.SessionDriver {
	case DriverSQLite:
		db, err := sqlite.NewStore(app.cfg.SessionFile)
		if err != nil {
			return fmt.Errorf("failed to open session database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to migrate session database: %w", err)
		}
		app.store = db

	case DriverRedis:
		rdb, err := redis.Connect(ctx, app.cfg.RedisURL, app.cfg.RedisPrefix)
		if err != nil {
			return fmt.Errorf("failed to connect session redis: %w", err)
		}
		app.store = rdb

	case DriverMemory:
		app.store = memory.NewStore()

	default:
		return fmt.Errorf("unknown session driver %q", app.cfg.SessionDriver)
	}

	app.logger.Debug("session store ready", "driver", app.cfg.SessionDriver)
	return nil
}

func (app *Application) initClient() {
	limiter := httpx.NewLimiter(httpx.RateLimitConfig{
		RequestsPerSecond: app.cfg.MaxRPS,
		Burst:             app.cfg.Burst,
	})

	app.client = campussdk.NewSDKClient(app.cfg.PageHost, app.store,
		campussdk.WithHTTPClient(httpx.NewClient(
			slogx.Transport(app.logger),
			httpx.Throttle(limiter),
		)),
		campussdk.WithLogger(app.logger),
		campussdk.WithMetrics(app.registry),
	)
}

// Client returns the configured SDK client.
func (app *Application) Client() *campussdk.SDKClient {
	return app.client
}

// Logger returns the application logger.
func (app *Application) Logger() *slog.Logger {
	return app.logger
}

// CheckBackend logs whether the backend answers its health probe. It is
// advisory; nothing is gated on the result.
func (app *Application) CheckBackend(ctx context.Context) campussdk.Health {
	health := app.client.HealthCheck(ctx)
	if health.Healthy() {
		app.logger.Info("backend connected", "base_url", app.client.BaseURL)
	} else {
		app.logger.Warn("backend is offline",
			"base_url", app.client.BaseURL,
			"message", health.Message,
		)
	}
	return health
}

// Close writes the metrics file, if configured, and closes the store.
func (app *Application) Close() error {
	var errs []error

	if app.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(app.cfg.MetricsFile, app.registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}

	if err := app.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close session store: %w", err))
	}

	return errors.Join(errs...)
}
