// Package entity contains the core business objects of the project.
package entity

import "time"

// Location is a single best-effort position fix. It is never persisted.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationSource names where a resolved location came from.
type LocationSource string

const (
	LocationSourceBridge LocationSource = "bridge"
	LocationSourceURL    LocationSource = "url"
	LocationSourceLookup LocationSource = "lookup"
)

// ResolvedLocation is a location together with the source that produced it.
type ResolvedLocation struct {
	Location
	Source LocationSource `json:"source"`

	// PermissionGranted is the permission answer seen while resolving
	PermissionGranted bool `json:"has_permission"`
}

// PositionOptions mirrors the browser geolocation options contract.
type PositionOptions struct {
	Timeout            time.Duration
	MaximumAge         time.Duration
	EnableHighAccuracy bool
}

// BridgeLocation is the structured result of a native bridge location call.
type BridgeLocation struct {
	Success   bool    `json:"success"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
