package impl

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultLookupTimeout    = 10 * time.Second
	defaultLookupMaximumAge = 5 * time.Minute
)

// locationService implements the LocationUsecase interface.
// Sources are tried strictly in order: permission, native fix, position lookup.
type locationService struct {
	geolocator service.Geolocator
	options    entity.PositionOptions
	logger     *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Geolocator service.Geolocator `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	options := entity.PositionOptions{
		Timeout:            defaultLookupTimeout,
		MaximumAge:         defaultLookupMaximumAge,
		EnableHighAccuracy: true,
	}
	if params.Config != nil && params.Config.Geolocation != nil {
		geo := params.Config.Geolocation
		if geo.Timeout > 0 {
			options.Timeout = geo.Timeout
		}
		if geo.MaximumAge > 0 {
			options.MaximumAge = geo.MaximumAge
		}
		if geo.EnableHighAccuracy != nil {
			options.EnableHighAccuracy = *geo.EnableHighAccuracy
		}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &locationService{
		geolocator: params.Geolocator,
		options:    options,
		logger:     logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HasLocationPermission asks the bridge first, then falls back to the
// locationPermission URL parameter. Bridge failures count as "not granted".
func (srv *locationService) HasLocationPermission(ctx context.Context, req *usecase.LocationRequest) bool {
	if req == nil {
		return false
	}

	if req.Bridge != nil {
		granted, err := req.Bridge.LocationPermission(ctx)
		switch {
		case err == nil:
			return granted
		case errors.Is(err, service.ErrBridgeMethodUnavailable):
			// fall back to URL parameters
		default:
			srv.log(ctx).Warn("Bridge permission query failed", slog.Any("error", err))

			return false
		}
	}

	return req.Query.Get(constants.QueryLocationPermission) == "true"
}

// NativeLocation returns the fix supplied by the shell, either through the
// bridge or the lat/lng URL parameters.
func (srv *locationService) NativeLocation(ctx context.Context, req *usecase.LocationRequest) (*entity.Location, bool) {
	location, _, ok := srv.nativeLocation(ctx, req)

	return location, ok
}

func (srv *locationService) nativeLocation(ctx context.Context, req *usecase.LocationRequest) (*entity.Location, entity.LocationSource, bool) {
	if req == nil {
		return nil, "", false
	}

	if req.Bridge != nil {
		result, err := req.Bridge.CurrentLocation(ctx)
		switch {
		case err == nil:
			if !result.Success {
				return nil, "", false
			}
			location := &entity.Location{Latitude: result.Latitude, Longitude: result.Longitude}
			if !isValidLocation(location) {
				srv.log(ctx).Warn("Bridge returned an invalid location",
					slog.Float64("latitude", result.Latitude),
					slog.Float64("longitude", result.Longitude),
				)

				return nil, "", false
			}

			return location, entity.LocationSourceBridge, true
		case errors.Is(err, service.ErrBridgeMethodUnavailable):
			// fall back to URL parameters
		default:
			srv.log(ctx).Warn("Bridge location fetch failed", slog.Any("error", err))

			return nil, "", false
		}
	}

	location, ok := locationFromQuery(req.Query)
	if !ok {
		return nil, "", false
	}

	return location, entity.LocationSourceURL, true
}

// ResolveLocation runs the resolution chain and never invents a coordinate.
func (srv *locationService) ResolveLocation(ctx context.Context, req *usecase.LocationRequest) (*entity.ResolvedLocation, error) {
	if req == nil {
		req = &usecase.LocationRequest{}
	}

	granted := srv.HasLocationPermission(ctx, req)
	if granted {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		if location, source, ok := srv.nativeLocation(ctx, req); ok {
			return &entity.ResolvedLocation{Location: *location, Source: source, PermissionGranted: true}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	resolved, err := srv.lookup(ctx, req.ClientIP)
	if err != nil {
		return nil, err
	}
	resolved.PermissionGranted = granted

	return resolved, nil
}

func (srv *locationService) lookup(ctx context.Context, client string) (*entity.ResolvedLocation, error) {
	if srv.geolocator == nil {
		return nil, domainerrors.ErrLocationUnavailable.WrapMessage("position lookup not configured")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, srv.options.Timeout)
	defer cancel()

	location, err := srv.geolocator.CurrentPosition(lookupCtx, client, srv.options)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}

		srv.log(ctx).Warn("Position lookup failed", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrLocationUnavailable, "position lookup: %v", err)
	}

	if !isValidLocation(location) {
		return nil, domainerrors.ErrLocationUnavailable.WrapMessage("position lookup returned no usable fix")
	}

	return &entity.ResolvedLocation{Location: *location, Source: entity.LocationSourceLookup}, nil
}

func locationFromQuery(query url.Values) (*entity.Location, bool) {
	rawLat, rawLng := query.Get(constants.QueryLatitude), query.Get(constants.QueryLongitude)
	if rawLat == "" || rawLng == "" {
		return nil, false
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, false
	}

	location := &entity.Location{Latitude: lat, Longitude: lng}

	return location, isValidLocation(location)
}

func isValidLocation(location *entity.Location) bool {
	if location == nil {
		return false
	}

	// Any finite pair is usable; the range is not checked.
	lat, lng := location.Latitude, location.Longitude

	return !math.IsNaN(lat) && !math.IsNaN(lng) && !math.IsInf(lat, 0) && !math.IsInf(lng, 0)
}
