package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// ReportingSvcFacade defines the report generation and filing operations.
//
// Reads resolve submitted-first: if a submitted snapshot exists for the
// requested period and type, it is returned verbatim; otherwise the report is
// computed live from the current ledger.
type ReportingSvcFacade interface {
	// GetVatReport returns the VAT return for a period.
	GetVatReport(ctx context.Context, organizationID, periodID, requestingUserID string) (*domain.VatReport, error)

	// SubmitVatReport freezes the VAT return for a period. Overrides carries
	// manual box edits keyed by box name; derived totals are recomputed before
	// the snapshot is stored. A second submit for the same period fails with
	// apperrors.ErrConflict.
	SubmitVatReport(ctx context.Context, organizationID, periodID string, overrides map[string]decimal.Decimal, requestingUserID string) (*domain.VatReport, error)

	// GetIncomeStatement builds the income statement for a fiscal year.
	GetIncomeStatement(ctx context.Context, organizationID string, fiscalYear int, requestingUserID string) (*domain.IncomeStatement, error)

	// GetBalanceSheet builds the cumulative balance sheet as of a date.
	GetBalanceSheet(ctx context.Context, organizationID string, asOf time.Time, requestingUserID string) (*domain.BalanceSheet, error)

	// GetAnnualReport bundles the fiscal year's statements.
	GetAnnualReport(ctx context.Context, organizationID string, fiscalYear int, requestingUserID string) (*domain.AnnualReport, error)
}
