package auth

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the TokenVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenVerifier picks the verifier named by auth.provider
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		params.Logger.Info("Using Firebase ID token verifier", slog.String("project_id", cfg.ProjectID))

		return NewFirebaseVerifier(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
	case constants.AuthProviderJWT, "":
		if params.Config.Env.Env == constants.EnvProduction {
			params.Logger.Warn("Shared-secret JWT verifier enabled in production")
		}

		return NewJWTVerifier(cfg.Secret)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenVerifier),
)
