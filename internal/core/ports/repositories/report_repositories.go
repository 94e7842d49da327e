package repositories

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// ReportRepositoryFacade persists computed report snapshots.
//
// The immutability contract lives here: saving any report for a (organization,
// period, type) combination that already has a submitted record fails with
// apperrors.ErrConflict. Submitted snapshots are never updated in place; a
// superseding draft is a new record with a new identity.
type ReportRepositoryFacade interface {
	// SaveReport inserts a new report record.
	SaveReport(ctx context.Context, report domain.PersistedReport) (*domain.PersistedReport, error)

	// FindSubmittedReport returns the submitted snapshot for the period and
	// type, or apperrors.ErrNotFound when none exists.
	FindSubmittedReport(ctx context.Context, organizationID, periodID string, reportType domain.ReportType) (*domain.PersistedReport, error)

	// ListReportsByOrganization returns all stored reports for an organization,
	// newest first.
	ListReportsByOrganization(ctx context.Context, organizationID string) ([]domain.PersistedReport, error)
}
