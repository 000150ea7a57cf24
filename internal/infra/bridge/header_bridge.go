// Package bridge adapts what the native shell forwards with each WebView
// request into a service.NativeBridge.
package bridge

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// headerBridge answers bridge calls from headers the shell injected into the request
type headerBridge struct {
	header http.Header
}

// FromRequest returns nil unless the request announces a native bridge.
// Methods whose headers are missing report service.ErrBridgeMethodUnavailable.
func FromRequest(r *http.Request) service.NativeBridge {
	if r == nil || r.Header.Get(constants.HeaderNativeBridge) == "" {
		return nil
	}

	return &headerBridge{header: r.Header.Clone()}
}

func (b *headerBridge) LocationPermission(ctx context.Context) (bool, error) {
	raw := strings.TrimSpace(b.header.Get(constants.HeaderLocationPermission))
	if raw == "" {
		return false, service.ErrBridgeMethodUnavailable
	}

	granted, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "malformed %s header", constants.HeaderLocationPermission)
	}

	return granted, nil
}

func (b *headerBridge) CurrentLocation(ctx context.Context) (entity.BridgeLocation, error) {
	rawLat := strings.TrimSpace(b.header.Get(constants.HeaderBridgeLatitude))
	rawLng := strings.TrimSpace(b.header.Get(constants.HeaderBridgeLongitude))
	if rawLat == "" && rawLng == "" {
		return entity.BridgeLocation{}, service.ErrBridgeMethodUnavailable
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lng, lngErr := strconv.ParseFloat(rawLng, 64)
	if latErr != nil || lngErr != nil {
		// The shell answered but without a usable fix.
		return entity.BridgeLocation{Success: false}, nil
	}

	return entity.BridgeLocation{Success: true, Latitude: lat, Longitude: lng}, nil
}
