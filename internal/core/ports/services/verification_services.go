package services

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// VerificationSvcFacade defines the verification service operations.
type VerificationSvcFacade interface {
	// CreateVerification validates and posts a balanced verification.
	CreateVerification(ctx context.Context, organizationID string, req dto.CreateVerificationRequest, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error)

	// GetVerificationByID retrieves one verification with its rows.
	GetVerificationByID(ctx context.Context, organizationID, verificationID, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error)

	// ListVerifications retrieves a page of verifications for an organization.
	ListVerifications(ctx context.Context, organizationID string, limit int, nextToken *string, requestingUserID string) ([]domain.Verification, *string, error)

	// ReverseVerification posts a mirror-image verification and links the pair.
	// The original is never mutated beyond the linkage columns.
	ReverseVerification(ctx context.Context, organizationID, verificationID, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error)
}
