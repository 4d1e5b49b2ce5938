package adapter

import (
	"context"
)

// ListerProvider builds a Lister bound to a specific access token.
type ListerProvider interface {
	// GetLister returns a Lister authorized with the given bearer token.
	GetLister(ctx context.Context, accessToken string) (Lister, error)
}
