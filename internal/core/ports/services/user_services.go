package services

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// UserSvcFacade defines the user account operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// VerifyCredentials checks a username/password pair and returns the user on
	// success, apperrors.ErrForbidden otherwise.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
	// FindOrCreateGoogleUser resolves the local account for a Google identity,
	// creating it on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email, name, providerID string) (*domain.User, error)
}

// TokenSvc issues and validates signed access tokens.
type TokenSvc interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(tokenString string) (string, error)
}
