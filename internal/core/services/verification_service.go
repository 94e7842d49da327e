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
	"github.com/klarbok/klarbok_backend/internal/utils/accounting"
)

// verificationService provides the append-only verification operations.
type verificationService struct {
	BaseService
	verificationRepo portsrepo.VerificationRepositoryFacade
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(verificationRepo portsrepo.VerificationRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.VerificationSvcFacade {
	return &verificationService{
		BaseService:      BaseService{OrganizationAuthorizer: authorizer},
		verificationRepo: verificationRepo,
	}
}

var _ portssvc.VerificationSvcFacade = (*verificationService)(nil)

// CreateVerification validates and posts a balanced verification.
func (s *verificationService) CreateVerification(ctx context.Context, organizationID string, req dto.CreateVerificationRequest, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	verificationID := uuid.NewString()

	verification := domain.Verification{
		VerificationID: verificationID,
		OrganizationID: organizationID,
		Date:           req.Date,
		Description:    req.Description,
		Status:         domain.VerificationPosted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	rows := make([]domain.VerificationRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, domain.VerificationRow{
			RowID:          uuid.NewString(),
			VerificationID: verificationID,
			Account:        r.Account,
			Debit:          r.Debit,
			Credit:         r.Credit,
			Date:           req.Date,
			Description:    r.Description,
		})
	}

	if err := accounting.ValidateVerificationRows(rows); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	saved, err := s.verificationRepo.SaveVerification(ctx, verification, rows)
	if err != nil {
		s.LogError(ctx, err, "failed to save verification", slog.String("organization_id", organizationID))
		return nil, nil, fmt.Errorf("failed to save verification: %w", err)
	}

	s.LogInfo(ctx, "verification posted",
		slog.String("verification_id", saved.VerificationID),
		slog.Int64("series_number", saved.SeriesNumber),
		slog.String("organization_id", organizationID))
	return saved, rows, nil
}

// GetVerificationByID retrieves one verification with its rows.
func (s *verificationService) GetVerificationByID(ctx context.Context, organizationID, verificationID, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	verification, err := s.verificationRepo.FindVerificationByID(ctx, verificationID)
	if err != nil {
		return nil, nil, err
	}
	if verification.OrganizationID != organizationID {
		return nil, nil, apperrors.ErrNotFound
	}

	rows, err := s.verificationRepo.FindRowsByVerificationID(ctx, verificationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load verification rows: %w", err)
	}
	return verification, rows, nil
}

// ListVerifications retrieves a page of verifications for an organization.
func (s *verificationService) ListVerifications(ctx context.Context, organizationID string, limit int, nextToken *string, requestingUserID string) ([]domain.Verification, *string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.verificationRepo.ListVerificationsByOrganization(ctx, organizationID, limit, nextToken)
}

// ReverseVerification posts a mirror-image verification and links the pair.
func (s *verificationService) ReverseVerification(ctx context.Context, organizationID, verificationID, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	original, err := s.verificationRepo.FindVerificationByID(ctx, verificationID)
	if err != nil {
		return nil, nil, err
	}
	if original.OrganizationID != organizationID {
		return nil, nil, apperrors.ErrNotFound
	}
	if original.Status != domain.VerificationPosted {
		return nil, nil, fmt.Errorf("%w: verification %s is already reversed", apperrors.ErrConflict, verificationID)
	}

	originalRows, err := s.verificationRepo.FindRowsByVerificationID(ctx, verificationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load verification rows: %w", err)
	}

	now := time.Now()
	reversalID := uuid.NewString()

	reversal := domain.Verification{
		VerificationID:         reversalID,
		OrganizationID:         organizationID,
		Date:                   now,
		Description:            fmt.Sprintf("Rättelse av verifikation %d: %s", original.SeriesNumber, original.Description),
		Status:                 domain.VerificationPosted,
		OriginalVerificationID: &original.VerificationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	// Mirror the rows: debits and credits swap sides.
	reversalRows := make([]domain.VerificationRow, 0, len(originalRows))
	for _, r := range originalRows {
		reversalRows = append(reversalRows, domain.VerificationRow{
			RowID:          uuid.NewString(),
			VerificationID: reversalID,
			Account:        r.Account,
			Debit:          r.Credit,
			Credit:         r.Debit,
			Date:           now,
			Description:    r.Description,
		})
	}

	saved, err := s.verificationRepo.SaveVerification(ctx, reversal, reversalRows)
	if err != nil {
		s.LogError(ctx, err, "failed to save reversal", slog.String("original_id", verificationID))
		return nil, nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	if err := s.verificationRepo.MarkReversed(ctx, original.VerificationID, saved.VerificationID, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "failed to link reversal", slog.String("original_id", verificationID))
		return nil, nil, fmt.Errorf("failed to link reversal: %w", err)
	}

	s.LogInfo(ctx, "verification reversed",
		slog.String("original_id", original.VerificationID),
		slog.String("reversal_id", saved.VerificationID))
	return saved, reversalRows, nil
}
