package delivery

import "context"

// Delivery is a transport that serves until it fails or its fx hooks stop it.
type Delivery interface {
	Serve(ctx context.Context) error
}
