package service

import "context"

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UID   string
	Email string
	Roles []string
}

// TokenVerifier validates bearer tokens issued by the identity provider.
// Issuing and refreshing tokens is the provider's job, not ours.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
