package repositories

import (
	"context"
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// VerificationReader defines read operations for verification data.
type VerificationReader interface {
	// FindVerificationByID retrieves a specific verification by its unique identifier.
	FindVerificationByID(ctx context.Context, verificationID string) (*domain.Verification, error)

	// FindRowsByVerificationID retrieves all rows belonging to one verification.
	FindRowsByVerificationID(ctx context.Context, verificationID string) ([]domain.VerificationRow, error)

	// ListVerificationsByOrganization retrieves a paginated list of verifications
	// using token-based pagination on (date, created_at).
	ListVerificationsByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Verification, *string, error)

	// FindRowsByOrganization retrieves every posted verification row for an
	// organization dated inside [from, to]. This is the ledger snapshot the
	// report builders aggregate over; reversed verifications and their
	// reversals cancel out and are included.
	FindRowsByOrganization(ctx context.Context, organizationID string, from, to time.Time) ([]domain.VerificationRow, error)
}

// VerificationWriter defines write operations for verification data.
// Verifications are append-only: there is no update or delete, only posting
// and reversal linkage.
type VerificationWriter interface {
	// SaveVerification persists a verification and its rows atomically,
	// assigning the next series number within the organization.
	SaveVerification(ctx context.Context, verification domain.Verification, rows []domain.VerificationRow) (*domain.Verification, error)

	// MarkReversed links an original verification to the one reversing it.
	MarkReversed(ctx context.Context, verificationID string, reversingVerificationID string, updatedBy string, updatedAt time.Time) error
}

// VerificationRepositoryFacade combines all verification repository interfaces.
type VerificationRepositoryFacade interface {
	VerificationReader
	VerificationWriter
}
