// Package bootstrap assembles the process-wide runtime shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"blogcms/internal/cache"
	"blogcms/internal/config"
	"blogcms/internal/database"
	"blogcms/internal/observability"
	"blogcms/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Version is the service version reported to tracing backends.
const Version = "1.0.0"

// Options control runtime initialization behavior.
type Options struct {
	// Seed runs the bundled fixtures after the schema is applied.
	Seed bool
}

// Runtime is everything a command needs after startup.
type Runtime struct {
	DB       *gorm.DB
	Redis    *redis.Client
	shutdown []func(context.Context) error
}

// InitRuntime starts tracing, connects to the database and Redis, and
// optionally seeds fixtures. Redis is optional; a nil client disables write
// rate limiting.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	rt := &Runtime{}

	stopTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "blogcms-api",
		ServiceVersion: Version,
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}
	rt.shutdown = append(rt.shutdown, stopTracing)

	db, err := database.Connect(cfg)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	rt.DB = db

	cache.InitRedis(cfg.RedisURL)
	rt.Redis = cache.GetClient()

	if opts.Seed {
		fixtures, err := seed.DefaultFixtures()
		if err != nil {
			_ = rt.Close(ctx)
			return nil, err
		}
		if _, err := seed.NewSeeder(db).Run(ctx, fixtures, seed.Options{}); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("failed to seed fixtures: %w", err)
		}
	}

	return rt, nil
}

// Close flushes traces. The database and Redis handles are owned by the server
// once it has been built, so they are closed by server.Shutdown.
func (r *Runtime) Close(ctx context.Context) error {
	var firstErr error
	for i := len(r.shutdown) - 1; i >= 0; i-- {
		if err := r.shutdown[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.shutdown = nil
	return firstErr
}
