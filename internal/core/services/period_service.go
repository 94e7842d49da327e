package services

import (
	"context"
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

// periodService provides financial period operations.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.PeriodSvcFacade {
	return &periodService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		periodRepo:  periodRepo,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod creates a reporting period.
func (s *periodService) CreatePeriod(ctx context.Context, organizationID string, req dto.CreatePeriodRequest, requestingUserID string) (*domain.FinancialPeriod, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: period end must be after start", apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.FinancialPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: organizationID,
		Label:          req.Label,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		VatDueDate:     req.VatDueDate,
		Status:         domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "failed to save period", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to save period: %w", err)
	}
	return &period, nil
}

// GetPeriodByID retrieves one period.
func (s *periodService) GetPeriodByID(ctx context.Context, organizationID, periodID, requestingUserID string) (*domain.FinancialPeriod, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return period, nil
}

// ListPeriods lists the organization's periods.
func (s *periodService) ListPeriods(ctx context.Context, organizationID, requestingUserID string) ([]domain.FinancialPeriod, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.periodRepo.ListPeriodsByOrganization(ctx, organizationID)
}

// ClosePeriod marks a period closed for further bookkeeping.
func (s *periodService) ClosePeriod(ctx context.Context, organizationID, periodID, requestingUserID string) (*domain.FinancialPeriod, error) {
	period, err := s.GetPeriodByID(ctx, organizationID, periodID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodClosed {
		return nil, fmt.Errorf("%w: period %s is already closed", apperrors.ErrConflict, periodID)
	}
	if err := s.periodRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodClosed, requestingUserID); err != nil {
		return nil, fmt.Errorf("failed to close period: %w", err)
	}
	period.Status = domain.PeriodClosed
	s.LogInfo(ctx, "period closed", slog.String("period_id", periodID))
	return period, nil
}
