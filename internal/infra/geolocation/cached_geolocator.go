package geolocation

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type cachedGeolocator struct {
	next   service.Geolocator
	cache  service.PositionCache
	logger *slog.Logger
}

// NewCachedGeolocator reuses fixes younger than opts.MaximumAge.
// Cache failures are logged and never fail the lookup.
func NewCachedGeolocator(next service.Geolocator, cache service.PositionCache, logger *slog.Logger) service.Geolocator {
	return &cachedGeolocator{next: next, cache: cache, logger: logger}
}

func (g *cachedGeolocator) CurrentPosition(ctx context.Context, client string, opts entity.PositionOptions) (*entity.Location, error) {
	if opts.MaximumAge > 0 {
		location, ok, err := g.cache.Get(ctx, client)
		switch {
		case err != nil:
			g.logger.WarnContext(ctx, "[Geolocation] Position cache read failed", slog.Any("error", err))
		case ok:
			return location, nil
		}
	}

	location, err := g.next.CurrentPosition(ctx, client, opts)
	if err != nil {
		return nil, err
	}

	if err := g.cache.Set(ctx, client, location, opts.MaximumAge); err != nil {
		g.logger.WarnContext(ctx, "[Geolocation] Position cache write failed", slog.Any("error", err))
	}

	return location, nil
}
