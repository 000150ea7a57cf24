// Package handler contains the echo handlers of the public and owner APIs.
package handler

import (
	"math"
	"net/http"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/bridge"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// locationRequest collects everything the location resolver may consult for this request
func locationRequest(c echo.Context) *usecase.LocationRequest {
	return &usecase.LocationRequest{
		Bridge:   bridge.FromRequest(c.Request()),
		Query:    c.QueryParams(),
		ClientIP: c.RealIP(),
	}
}

// uuidParam parses a path parameter, writing a 400 response when it is malformed
func uuidParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// floatQuery parses an optional float query parameter; ok is false only when present and malformed.
// NaN and infinities are malformed.
func floatQuery(c echo.Context, name string) (value float64, present, ok bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false, true
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, false
	}

	return value, true, true
}

// ownerID returns the authenticated owner's UID, writing a 401 response when absent
func ownerID(c echo.Context) (string, bool, error) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil || identity.UID == "" {
		return "", false, response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	return identity.UID, true, nil
}

// bindAndValidate binds the body into req and runs the echo validator
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, err)
	}

	return true, nil
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
