package googledrive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/driveview/backend/internal/adapter"
)

// Provider implements adapter.ListerProvider for Google Drive.
type Provider struct {
	opts []option.ClientOption
}

// NewProvider creates a Google Drive provider. Extra client options are
// forwarded to every Drive service it builds (tests use this to point at a
// local endpoint).
func NewProvider(opts ...option.ClientOption) *Provider {
	return &Provider{opts: opts}
}

// GetLister returns a DriveLister authorized with the given access token.
// The token is attached as-is; expiry and refresh are the caller's concern.
func (p *Provider) GetLister(ctx context.Context, accessToken string) (adapter.Lister, error) {
	if accessToken == "" {
		return nil, adapter.ErrUnauthorized
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, p.opts...)

	lister, err := NewDriveLister(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive lister: %w", err)
	}
	return lister, nil
}
