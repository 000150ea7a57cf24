// Package geo holds the pure distance and ranking logic for stores.
package geo

import (
	"math"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used by CalculateDistance.
const EarthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance in kilometers between two
// points given in degrees, rounded to one decimal place.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusKm*c*10) / 10
}

// FormatDistance renders a distance for display: meters below 1 km, else km.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return strconv.FormatInt(int64(math.Round(distanceKm*1000)), 10) + "m"
	}

	return strconv.FormatFloat(distanceKm, 'f', -1, 64) + "km"
}

// Point converts a location into an orb point (lon, lat order).
func Point(location entity.Location) orb.Point {
	return orb.Point{location.Longitude, location.Latitude}
}

// DistanceBetween is CalculateDistance over orb points.
func DistanceBetween(a, b orb.Point) float64 {
	return CalculateDistance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// RadiusBound returns the bounding box around center covering radiusKm.
// It is a cheap pre-filter; callers confirm with DistanceBetween.
func RadiusBound(center orb.Point, radiusKm float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(center, radiusKm*1000)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
