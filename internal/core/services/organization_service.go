package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// roleRank orders roles so "at least member" style checks read naturally.
var roleRank = map[domain.OrganizationRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// organizationService provides organization operations and doubles as the
// organization authorizer for the other services.
type organizationService struct {
	BaseService
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &organizationService{organizationRepo: organizationRepo}
}

var (
	_ portssvc.OrganizationSvcFacade     = (*organizationService)(nil)
	_ portssvc.OrganizationAuthorizerSvc = (*organizationService)(nil)
)

// CreateOrganization creates an organization and enrolls the creator as admin.
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, requestingUserID string) (*domain.Organization, error) {
	now := time.Now()
	fiscalYearEnd := req.FiscalYearEnd
	if fiscalYearEnd == "" {
		fiscalYearEnd = "12-31"
	}
	if _, err := time.Parse("01-02", fiscalYearEnd); err != nil {
		return nil, fmt.Errorf("%w: fiscal year end must be MM-DD", apperrors.ErrValidation)
	}

	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		OrgNumber:      req.OrgNumber,
		FiscalYearEnd:  fiscalYearEnd,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.organizationRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "failed to save organization", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	membership := domain.UserOrganization{
		UserID:         requestingUserID,
		OrganizationID: org.OrganizationID,
		Role:           domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.organizationRepo.AddUserToOrganization(ctx, membership); err != nil {
		s.LogError(ctx, err, "failed to enroll creator", slog.String("organization_id", org.OrganizationID))
		return nil, fmt.Errorf("failed to enroll creator: %w", err)
	}

	s.LogInfo(ctx, "organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("created_by", requestingUserID))
	return &org, nil
}

// GetOrganizationByID retrieves an organization the user is a member of.
func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID, requestingUserID string) (*domain.Organization, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.organizationRepo.FindOrganizationByID(ctx, organizationID)
}

// ListUserOrganizations lists the organizations the user belongs to.
func (s *organizationService) ListUserOrganizations(ctx context.Context, requestingUserID string) ([]domain.Organization, error) {
	return s.organizationRepo.ListOrganizationsByUser(ctx, requestingUserID)
}

// AuthorizeUserAction checks the user's membership role against the required role.
func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, required domain.OrganizationRole) error {
	membership, err := s.organizationRepo.FindUserOrganization(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user is not a member of organization %s", apperrors.ErrForbidden, organizationID)
		}
		return err
	}
	if roleRank[membership.Role] < roleRank[required] {
		return fmt.Errorf("%w: role %s required", apperrors.ErrForbidden, required)
	}
	return nil
}
