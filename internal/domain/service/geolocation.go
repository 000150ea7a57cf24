package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrBridgeMethodUnavailable is returned by a NativeBridge whose host does not
// expose the requested method. Callers fall through to the next source.
var ErrBridgeMethodUnavailable = errors.New("native bridge method unavailable")

// NativeBridge is the messaging surface exposed by the native app shell.
// A nil NativeBridge means the page is not hosted by a shell.
type NativeBridge interface {
	// LocationPermission asks the host whether location permission is granted.
	LocationPermission(ctx context.Context) (bool, error)

	// CurrentLocation asks the host for its current position fix.
	CurrentLocation(ctx context.Context) (entity.BridgeLocation, error)
}

// Geolocator is the last-resort position source.
type Geolocator interface {
	// CurrentPosition returns a fix for the given client key (e.g. its IP address).
	// Implementations honor opts.Timeout; callers bound the call with the same value.
	CurrentPosition(ctx context.Context, client string, opts entity.PositionOptions) (*entity.Location, error)
}

// PositionCache stores recent fixes so Geolocator lookups can honor MaximumAge.
type PositionCache interface {
	Get(ctx context.Context, key string) (*entity.Location, bool, error)
	Set(ctx context.Context, key string, location *entity.Location, ttl time.Duration) error
}
