package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// GoogleOAuthSvcFacade drives the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates the CSRF token for the OAuth round-trip.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo fetches the Google profile for an access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken verifies an ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
