package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/geo"

	"github.com/labstack/echo/v4"
)

// DistanceResponse is the body of GET /distance
type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Display    string  `json:"display"`
}

// CalculateDistance returns the great-circle distance between two points
// given as from_lat, from_lng, to_lat and to_lng query parameters.
func CalculateDistance(c echo.Context) error {
	names := [4]string{"from_lat", "from_lng", "to_lat", "to_lng"}
	var values [4]float64
	for i, name := range names {
		value, present, ok := floatQuery(c, name)
		if !present || !ok {
			return response.BadRequest(c, "INVALID_COORDINATE", name+" is required and must be a number")
		}
		values[i] = value
	}

	km := geo.CalculateDistance(values[0], values[1], values[2], values[3])

	return response.Success(c, http.StatusOK, DistanceResponse{
		DistanceKm: km,
		Display:    geo.FormatDistance(km),
	}, "Distance calculated successfully")
}
