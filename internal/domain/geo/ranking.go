package geo

import (
	"slices"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RankStores annotates stores with their distance from location and sorts them
// nearest first. It never fails: without a location, or when no store has
// coordinates, the list comes back unranked and without distances.
func RankStores(location *entity.Location, stores []*entity.Store) entity.RankedStores {
	if location == nil || len(stores) == 0 {
		return unranked(stores, 0)
	}

	withCoords := make([]*entity.Store, 0, len(stores))
	for _, store := range stores {
		if store.HasCoordinates() {
			withCoords = append(withCoords, store)
		}
	}

	excluded := len(stores) - len(withCoords)
	if len(withCoords) == 0 {
		return unranked(stores, excluded)
	}

	ranked := make([]entity.StoreWithDistance, 0, len(withCoords))
	for _, store := range withCoords {
		distance := CalculateDistance(location.Latitude, location.Longitude, *store.Latitude, *store.Longitude)
		ranked = append(ranked, entity.StoreWithDistance{
			Store:    *store.Clone(),
			Distance: &distance,
		})
	}

	slices.SortStableFunc(ranked, func(a, b entity.StoreWithDistance) int {
		switch {
		case *a.Distance < *b.Distance:
			return -1
		case *a.Distance > *b.Distance:
			return 1
		default:
			return 0
		}
	})

	return entity.RankedStores{
		Stores:        ranked,
		Ranked:        true,
		ExcludedCount: excluded,
	}
}

// NearbyStores is RankStores truncated to the first n entries. n <= 0 keeps all.
func NearbyStores(location *entity.Location, stores []*entity.Store, n int) entity.RankedStores {
	result := RankStores(location, stores)
	if result.Ranked && n > 0 && len(result.Stores) > n {
		result.Stores = result.Stores[:n]
	}

	return result
}

// WithinRadius drops ranked stores farther than radiusKm from center.
// Unranked results and non-positive radii pass through untouched.
func WithinRadius(result entity.RankedStores, center entity.Location, radiusKm float64) entity.RankedStores {
	if !result.Ranked || radiusKm <= 0 {
		return result
	}

	bound := RadiusBound(Point(center), radiusKm)
	kept := result.Stores[:0:0]
	for _, store := range result.Stores {
		point := orb.Point{*store.Longitude, *store.Latitude}
		if !bound.Contains(point) || *store.Distance > radiusKm {
			continue
		}
		kept = append(kept, store)
	}
	result.Stores = kept

	return result
}

func unranked(stores []*entity.Store, excluded int) entity.RankedStores {
	out := make([]entity.StoreWithDistance, 0, len(stores))
	for _, store := range stores {
		if store == nil {
			continue
		}
		out = append(out, entity.StoreWithDistance{Store: *store.Clone()})
	}

	return entity.RankedStores{
		Stores:        out,
		Ranked:        false,
		ExcludedCount: excluded,
	}
}
