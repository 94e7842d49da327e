package repositories

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// OrganizationRepositoryFacade defines persistence operations for organizations
// and their memberships.
type OrganizationRepositoryFacade interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error)
	AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error
	// FindUserOrganization returns the membership of a user in an organization,
	// or apperrors.ErrNotFound when the user is not a member.
	FindUserOrganization(ctx context.Context, userID, organizationID string) (*domain.UserOrganization, error)
}
