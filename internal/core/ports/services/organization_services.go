package services

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// OrganizationSvcFacade defines the organization operations.
type OrganizationSvcFacade interface {
	// CreateOrganization creates an organization and enrolls the creator as admin.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, requestingUserID string) (*domain.Organization, error)
	GetOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error)
	ListUserOrganizations(ctx context.Context, requestingUserID string) ([]domain.Organization, error)
}

// OrganizationAuthorizerSvc checks that a user may act inside an organization.
// Services depend on this narrow interface rather than the full organization
// service to keep the dependency direction clean.
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when the user holds at least the required
	// role in the organization, apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID, organizationID string, required domain.OrganizationRole) error
}
