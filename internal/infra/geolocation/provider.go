package geolocation

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// GeolocatorParams holds dependencies for the position lookup, injected by Fx
type GeolocatorParams struct {
	fx.In

	Config *config.Config
	Cache  service.PositionCache
	Logger *slog.Logger
}

// NewGeolocator builds the cached IP lookup from configuration. It returns a
// nil Geolocator when no lookup URL is configured, which disables the
// fallback step of location resolution.
func NewGeolocator(params GeolocatorParams) (service.Geolocator, error) {
	cfg := params.Config.Geolocation
	if cfg == nil || cfg.LookupURL == "" {
		params.Logger.Info("Position lookup not configured, location fallback disabled")

		return nil, nil
	}

	lookup, err := NewIPLookup(cfg.LookupURL, &http.Client{Timeout: cfg.Timeout}, params.Logger)
	if err != nil {
		return nil, err
	}

	return NewCachedGeolocator(lookup, params.Cache, params.Logger), nil
}

// Module provides the geolocation FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeolocator),
)
