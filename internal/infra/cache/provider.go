package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultMemoryCacheSize = 10000
	defaultMemoryCacheTTL  = 5 * time.Minute
)

// CacheParams holds dependencies for the position cache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPositionCache picks Redis when configured, in-memory otherwise
func NewPositionCache(params CacheParams) (service.PositionCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		size, maxTTL := memoryCacheLimits(params.Config.Geolocation)
		params.Logger.Info("Redis not configured, using in-memory position cache",
			slog.Int("size", size),
			slog.Duration("max_ttl", maxTTL),
		)

		return NewMemoryPositionCache(size, maxTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "ping redis %s", cfg.Addr)
			}
			params.Logger.Info("Redis position cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisPositionCache(client, cfg.Prefix), nil
}

func memoryCacheLimits(cfg *config.GeolocationConfig) (size int, maxTTL time.Duration) {
	size, maxTTL = defaultMemoryCacheSize, defaultMemoryCacheTTL
	if cfg == nil {
		return size, maxTTL
	}
	if cfg.CacheSize > 0 {
		size = cfg.CacheSize
	}
	if cfg.MaximumAge > 0 {
		maxTTL = cfg.MaximumAge
	}

	return size, maxTTL
}

// Module provides the position cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPositionCache),
)
