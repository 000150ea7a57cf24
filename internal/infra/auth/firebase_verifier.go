package auth

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// idTokenVerifier is the part of the Firebase auth client we depend on
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier initializes the Firebase Admin SDK. Credentials come
// from credentialsPath when set, otherwise from application default credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsPath string) (service.TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates a Firebase ID token and maps its claims to an Identity
func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	return identityFromFirebase(decoded), nil
}

func identityFromFirebase(token *fbauth.Token) *service.Identity {
	identity := &service.Identity{UID: token.UID}

	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	// custom claim set through the Admin SDK
	if roles, ok := token.Claims["roles"].([]any); ok {
		for _, role := range roles {
			if s, ok := role.(string); ok {
				identity.Roles = append(identity.Roles, s)
			}
		}
	}

	return identity
}
