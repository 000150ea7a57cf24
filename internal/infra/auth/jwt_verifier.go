// Package auth provides the TokenVerifier implementations used to
// authenticate store owners.
package auth

import (
	"context"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ownerClaims is the payload of development tokens
type ownerClaims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 tokens signed with a shared secret.
// It stands in for the identity provider in development and tests.
type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(secret string) (service.TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{secret: []byte(secret)}, nil
}

// Verify checks signature, expiry and subject.
func (v *jwtVerifier) Verify(_ context.Context, tokenString string) (*service.Identity, error) {
	claims := &ownerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &service.Identity{
		UID:   claims.Subject,
		Email: claims.Email,
		Roles: claims.Roles,
	}, nil
}

// SignJWT issues a token accepted by the jwt verifier. Used by tests and local tooling.
func SignJWT(secret string, identity *service.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ownerClaims{
		Email: identity.Email,
		Roles: identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
