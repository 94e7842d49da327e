package repositories

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindUserByProviderID looks up an externally authenticated user by the
	// subject ID issued by the provider (e.g. Google).
	FindUserByProviderID(ctx context.Context, provider, providerID string) (*domain.User, error)
}
