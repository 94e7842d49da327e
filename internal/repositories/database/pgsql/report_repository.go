package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	"github.com/klarbok/klarbok_backend/internal/models"
	"github.com/klarbok/klarbok_backend/internal/utils/mapping"
)

type PgxReportRepository struct {
	BaseRepository
}

// newPgxReportRepository creates a new repository for persisted report snapshots.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

const reportColumns = `
	report_id, organization_id, period_id, report_type, data, status,
	period_start, period_end, generated_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanReport(row pgx.Row) (*models.Report, error) {
	var m models.Report
	err := row.Scan(
		&m.ReportID,
		&m.OrganizationID,
		&m.PeriodID,
		&m.ReportType,
		&m.Data,
		&m.Status,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.GeneratedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveReport inserts a new report record. A partial unique index on
// (organization_id, period_id, report_type) WHERE status = 'submitted' backs
// the immutability contract; a violation surfaces as apperrors.ErrConflict.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.PersistedReport) (*domain.PersistedReport, error) {
	m := mapping.ToModelReport(report)
	query := `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReportID,
		m.OrganizationID,
		m.PeriodID,
		m.ReportType,
		m.Data,
		m.Status,
		m.PeriodStart,
		m.PeriodEnd,
		m.GeneratedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: a submitted %s report already exists for period %s",
				apperrors.ErrConflict, m.ReportType, m.PeriodID)
		}
		return nil, fmt.Errorf("failed to insert report %s: %w", m.ReportID, err)
	}
	return &report, nil
}

// FindSubmittedReport returns the submitted snapshot for the period and type.
func (r *PgxReportRepository) FindSubmittedReport(ctx context.Context, organizationID, periodID string, reportType domain.ReportType) (*domain.PersistedReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE organization_id = $1 AND period_id = $2 AND report_type = $3 AND status = $4;
	`
	m, err := scanReport(r.Pool.QueryRow(ctx, query, organizationID, periodID, string(reportType), models.ReportSubmitted))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find submitted report: %w", err)
	}
	d := mapping.ToDomainReport(*m)
	return &d, nil
}

// ListReportsByOrganization returns all stored reports for an organization, newest first.
func (r *PgxReportRepository) ListReportsByOrganization(ctx context.Context, organizationID string) ([]domain.PersistedReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE organization_id = $1
		ORDER BY generated_at DESC;
	`
	pgRows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer pgRows.Close()

	var reports []domain.PersistedReport
	for pgRows.Next() {
		m, err := scanReport(pgRows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, mapping.ToDomainReport(*m))
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	return reports, nil
}
