package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/utils/accounting"
)

// reportingService derives reports from the ledger and manages their filing
// lifecycle. Reads are submitted-first: a filed snapshot wins over a live
// computation.
type reportingService struct {
	BaseService
	verificationRepo portsrepo.VerificationReader
	reportRepo       portsrepo.ReportRepositoryFacade
	periodRepo       portsrepo.PeriodRepositoryFacade
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	verificationRepo portsrepo.VerificationReader,
	reportRepo portsrepo.ReportRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	organizationRepo portsrepo.OrganizationRepositoryFacade,
	authorizer portssvc.OrganizationAuthorizerSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService:      BaseService{OrganizationAuthorizer: authorizer},
		verificationRepo: verificationRepo,
		reportRepo:       reportRepo,
		periodRepo:       periodRepo,
		organizationRepo: organizationRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// vatBoxSetters maps override keys to box fields. Derived boxes (ruta49 and the
// totals) are recomputed after overrides and are deliberately absent.
func vatBoxSetters(r *domain.VatReport) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"ruta05": &r.Ruta05, "ruta06": &r.Ruta06, "ruta07": &r.Ruta07, "ruta08": &r.Ruta08,
		"ruta10": &r.Ruta10, "ruta11": &r.Ruta11, "ruta12": &r.Ruta12,
		"ruta20": &r.Ruta20, "ruta21": &r.Ruta21, "ruta22": &r.Ruta22, "ruta23": &r.Ruta23, "ruta24": &r.Ruta24,
		"ruta30": &r.Ruta30, "ruta31": &r.Ruta31, "ruta32": &r.Ruta32,
		"ruta35": &r.Ruta35, "ruta36": &r.Ruta36, "ruta37": &r.Ruta37, "ruta38": &r.Ruta38,
		"ruta39": &r.Ruta39, "ruta40": &r.Ruta40, "ruta41": &r.Ruta41, "ruta42": &r.Ruta42,
		"ruta48": &r.Ruta48,
	}
}

// buildLiveVatReport computes the VAT return for a period from the current ledger.
func (s *reportingService) buildLiveVatReport(ctx context.Context, organizationID string, period *domain.FinancialPeriod) (*domain.VatReport, error) {
	rows, err := s.verificationRepo.FindRowsByOrganization(ctx, organizationID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger rows: %w", err)
	}
	balances, skipped := accounting.AggregateBalances(rows, period.StartDate, period.EndDate)
	if skipped > 0 {
		s.LogDebug(ctx, "skipped malformed ledger rows", slog.Int("count", skipped))
	}
	report := accounting.BuildVatReport(balances, *period)
	return &report, nil
}

// GetVatReport returns the VAT return for a period: the submitted snapshot if
// one exists, a live draft otherwise.
func (s *reportingService) GetVatReport(ctx context.Context, organizationID, periodID, requestingUserID string) (*domain.VatReport, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	period, err := s.loadPeriod(ctx, organizationID, periodID)
	if err != nil {
		return nil, err
	}

	submitted, err := s.reportRepo.FindSubmittedReport(ctx, organizationID, periodID, domain.ReportTypeVat)
	if err == nil {
		var report domain.VatReport
		if err := json.Unmarshal(submitted.Data, &report); err != nil {
			return nil, fmt.Errorf("failed to decode stored VAT report: %w", err)
		}
		return &report, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return s.buildLiveVatReport(ctx, organizationID, period)
}

// SubmitVatReport freezes the VAT return for a period.
func (s *reportingService) SubmitVatReport(ctx context.Context, organizationID, periodID string, overrides map[string]decimal.Decimal, requestingUserID string) (*domain.VatReport, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	period, err := s.loadPeriod(ctx, organizationID, periodID)
	if err != nil {
		return nil, err
	}

	if _, err := s.reportRepo.FindSubmittedReport(ctx, organizationID, periodID, domain.ReportTypeVat); err == nil {
		return nil, fmt.Errorf("%w: VAT report for period %s is already submitted", apperrors.ErrConflict, periodID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	report, err := s.buildLiveVatReport(ctx, organizationID, period)
	if err != nil {
		return nil, err
	}

	setters := vatBoxSetters(report)
	for box, value := range overrides {
		target, ok := setters[box]
		if !ok {
			return nil, fmt.Errorf("%w: unknown or derived VAT box %q", apperrors.ErrValidation, box)
		}
		*target = accounting.RoundKronor(value)
	}
	*report = accounting.RecalculateVat(*report)
	report.Status = domain.VatSubmitted

	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode VAT report: %w", err)
	}

	now := time.Now()
	persisted := domain.PersistedReport{
		ReportID:       uuid.NewString(),
		OrganizationID: organizationID,
		PeriodID:       periodID,
		ReportType:     domain.ReportTypeVat,
		Data:           data,
		Status:         domain.ReportSubmitted,
		PeriodStart:    period.StartDate,
		PeriodEnd:      period.EndDate,
		GeneratedAt:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if _, err := s.reportRepo.SaveReport(ctx, persisted); err != nil {
		s.LogError(ctx, err, "failed to store VAT report", slog.String("period_id", periodID))
		return nil, err
	}

	s.LogInfo(ctx, "VAT report submitted",
		slog.String("organization_id", organizationID),
		slog.String("period_id", periodID),
		slog.String("net_vat", report.NetVat.String()))
	return report, nil
}

// GetIncomeStatement builds the income statement for a fiscal year.
func (s *reportingService) GetIncomeStatement(ctx context.Context, organizationID string, fiscalYear int, requestingUserID string) (*domain.IncomeStatement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	fyStart, fyEnd, err := s.fiscalYearBounds(ctx, organizationID, fiscalYear)
	if err != nil {
		return nil, err
	}
	rows, err := s.verificationRepo.FindRowsByOrganization(ctx, organizationID, fyStart, fyEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger rows: %w", err)
	}
	statement := accounting.BuildIncomeStatement(rows, fyStart, fyEnd)
	return &statement, nil
}

// GetBalanceSheet builds the cumulative balance sheet as of a date.
func (s *reportingService) GetBalanceSheet(ctx context.Context, organizationID string, asOf time.Time, requestingUserID string) (*domain.BalanceSheet, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	rows, err := s.verificationRepo.FindRowsByOrganization(ctx, organizationID, time.Time{}, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger rows: %w", err)
	}
	sheet := accounting.BuildBalanceSheet(rows, asOf)
	if !sheet.Balances {
		s.LogInfo(ctx, "balance sheet does not reconcile",
			slog.String("organization_id", organizationID),
			slog.String("total_assets", sheet.TotalAssets.String()),
			slog.String("total_equity_liabilities", sheet.TotalEquityLiabilities.String()))
	}
	return &sheet, nil
}

// GetAnnualReport bundles the fiscal year's statements.
func (s *reportingService) GetAnnualReport(ctx context.Context, organizationID string, fiscalYear int, requestingUserID string) (*domain.AnnualReport, error) {
	statement, err := s.GetIncomeStatement(ctx, organizationID, fiscalYear, requestingUserID)
	if err != nil {
		return nil, err
	}
	sheet, err := s.GetBalanceSheet(ctx, organizationID, statement.FiscalYearEnd, requestingUserID)
	if err != nil {
		return nil, err
	}
	return &domain.AnnualReport{
		FiscalYearStart: statement.FiscalYearStart,
		FiscalYearEnd:   statement.FiscalYearEnd,
		IncomeStatement: *statement,
		BalanceSheet:    *sheet,
	}, nil
}

// loadPeriod fetches a period and checks it belongs to the organization.
func (s *reportingService) loadPeriod(ctx context.Context, organizationID, periodID string) (*domain.FinancialPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return period, nil
}

// fiscalYearBounds resolves the fiscal year interval from the organization's
// configured year end ("MM-DD"). A fiscal year is named after its end year.
func (s *reportingService) fiscalYearBounds(ctx context.Context, organizationID string, fiscalYear int) (time.Time, time.Time, error) {
	org, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	yearEnd := org.FiscalYearEnd
	if yearEnd == "" {
		yearEnd = "12-31"
	}
	end, err := time.Parse("2006-01-02", fmt.Sprintf("%d-%s", fiscalYear, yearEnd))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid fiscal year end %q", apperrors.ErrValidation, org.FiscalYearEnd)
	}
	start := end.AddDate(-1, 0, 1)
	return start, end, nil
}
