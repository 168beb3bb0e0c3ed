package ports

import (
	"context"

	"freight-emissions/internal/features/auth/domain"
)

// IdentityProvider defines the token endpoint of the identity server.
// This is a Secondary Port (Driven Port).
type IdentityProvider interface {
	// Authenticate exchanges a grant for a new token pair.
	Authenticate(ctx context.Context, req domain.GrantRequest) (*domain.TokenResponse, error)
	// Logout ends the session bound to the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
