package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a merchant with a menu, owned by a store operator account.
// Coordinates are optional; stores without them cannot be ranked by distance.
type Store struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     string    `json:"owner_id"` // Identity provider UID of the operator
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	IsOpen      bool      `json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (s *Store) HasCoordinates() bool {
	return s != nil && s.Latitude != nil && s.Longitude != nil
}

// Clone returns a deep copy, so callers may mutate it freely.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}

	cloned := *s
	if s.Latitude != nil {
		lat := *s.Latitude
		cloned.Latitude = &lat
	}
	if s.Longitude != nil {
		lng := *s.Longitude
		cloned.Longitude = &lng
	}

	return &cloned
}

// StoreWithDistance is a store annotated with its distance from the caller in
// kilometers, rounded to one decimal. Distance is nil when it could not be computed.
type StoreWithDistance struct {
	Store
	Distance *float64 `json:"distance,omitempty"`
}

// RankedStores is the output of the ranking pipeline.
type RankedStores struct {
	Stores []StoreWithDistance `json:"stores"`
	// Ranked is true when Stores is distance-sorted and filtered to stores with coordinates
	Ranked bool `json:"ranked"`
	// ExcludedCount is the number of stores left out of distance sorting for lack of coordinates
	ExcludedCount int `json:"excluded_count"`
}
