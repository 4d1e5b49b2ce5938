package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Service wraps the OAuth2 authorization-code flow against Google.
// It holds no per-user state; tokens live in the requester's cookies.
type Service struct {
	cfg        *oauth2.Config
	clientOpts []option.ClientOption
}

// NewService creates a Service. The oauth2.Config should be constructed by
// the caller (e.g. from environment variables). Extra client options are
// forwarded to the userinfo service; tests use them to point at a local
// endpoint.
func NewService(cfg *oauth2.Config, opts ...option.ClientOption) *Service {
	return &Service{cfg: cfg, clientOpts: opts}
}

// Config returns the OAuth2 config.
func (s *Service) Config() *oauth2.Config {
	return s.cfg
}

// Configured reports whether every required credential is present. Absence
// surfaces as a configuration error on first use, not at startup.
func (s *Service) Configured() bool {
	return s.cfg.ClientID != "" && s.cfg.ClientSecret != "" && s.cfg.RedirectURL != ""
}

// AuthCodeURL returns the Google consent URL. Offline access makes Google
// issue a refresh token; forced consent makes it do so on every login, not
// just the first.
func (s *Service) AuthCodeURL(state string) string {
	return s.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades a one-time authorization code for a token.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.cfg.Exchange(ctx, code)
}

// Refresh obtains a fresh access token using a refresh token, without user
// interaction. The returned token carries the (possibly rotated) refresh
// token as well.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ts := s.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}
	return tok, nil
}

// FetchUserEmail retrieves the authenticated principal's email address from
// the userinfo endpoint. Callers treat failure as non-fatal.
func (s *Service) FetchUserEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	opts := append([]option.ClientOption{
		option.WithTokenSource(s.cfg.TokenSource(ctx, token)),
	}, s.clientOpts...)

	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	return info.Email, nil
}
