package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates store owners with identity provider tokens.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate verifies the bearer token and puts the identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Token verification failed", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole checks the identity carries a role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
			}

			if !slices.Contains(identity.Roles, requiredRole) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}
