package usecase

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// LocationRequest carries every location source available for one caller.
type LocationRequest struct {
	// Bridge is the native shell bridge; nil when the page is not shell-hosted
	Bridge service.NativeBridge
	// Query holds the page URL parameters (locationPermission, lat, lng)
	Query url.Values
	// ClientIP keys the position lookup fallback
	ClientIP string
}

// LocationUsecase resolves the caller's position.
type LocationUsecase interface {
	// HasLocationPermission reports whether the caller granted location access.
	HasLocationPermission(ctx context.Context, req *LocationRequest) bool

	// NativeLocation returns the position supplied by the shell, if any.
	NativeLocation(ctx context.Context, req *LocationRequest) (*entity.Location, bool)

	// ResolveLocation tries the native sources, then the position lookup fallback.
	// It returns ErrLocationUnavailable rather than a synthesized coordinate.
	ResolveLocation(ctx context.Context, req *LocationRequest) (*entity.ResolvedLocation, error)
}
