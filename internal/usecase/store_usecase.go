package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreQuery describes a customer-facing store listing request.
type StoreQuery struct {
	Location *LocationRequest
	// RadiusKm limits ranked results to stores within the radius; 0 disables the filter
	RadiusKm float64
	// Limit is the nearby list size; 0 uses the configured default
	Limit int
}

// StoreListing is a store list plus how it was ordered.
type StoreListing struct {
	entity.RankedStores
	Location *entity.ResolvedLocation `json:"location,omitempty"`
	// LocationError explains why the list is not distance-ranked
	LocationError string `json:"location_error,omitempty"`
	// RetryPermission tells the page to offer a "retry location permission" action
	RetryPermission bool `json:"retry_permission"`
}

// StoreUsecase serves the customer-facing catalog.
type StoreUsecase interface {
	// ListStores returns every store, distance-ranked when the caller's location resolves.
	ListStores(ctx context.Context, query *StoreQuery) (*StoreListing, error)

	// NearbyStores returns the closest stores, truncated to the query limit.
	NearbyStores(ctx context.Context, query *StoreQuery) (*StoreListing, error)

	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)

	// GetMenu returns the store with its categories and items in display order.
	GetMenu(ctx context.Context, storeID uuid.UUID) (*entity.Menu, error)

	// GetStoreQRCode renders a PNG QR code for the store's ordering page.
	GetStoreQRCode(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}
