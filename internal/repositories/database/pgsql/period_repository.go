package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	"github.com/klarbok/klarbok_backend/internal/models"
	"github.com/klarbok/klarbok_backend/internal/utils/mapping"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for financial periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `
	period_id, organization_id, label, start_date, end_date, vat_due_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (*models.FinancialPeriod, error) {
	var m models.FinancialPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.OrganizationID,
		&m.Label,
		&m.StartDate,
		&m.EndDate,
		&m.VatDueDate,
		&m.Status,
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

// SavePeriod inserts a financial period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.FinancialPeriod) error {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO financial_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID,
		m.OrganizationID,
		m.Label,
		m.StartDate,
		m.EndDate,
		m.VatDueDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert period %s: %w", m.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves one period.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FinancialPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM financial_periods WHERE period_id = $1;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	d := mapping.ToDomainPeriod(*m)
	return &d, nil
}

// ListPeriodsByOrganization retrieves all periods for an organization, newest first.
func (r *PgxPeriodRepository) ListPeriodsByOrganization(ctx context.Context, organizationID string) ([]domain.FinancialPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM financial_periods WHERE organization_id = $1 ORDER BY start_date DESC;`
	pgRows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer pgRows.Close()

	var periods []domain.FinancialPeriod
	for pgRows.Next() {
		m, err := scanPeriod(pgRows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, mapping.ToDomainPeriod(*m))
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate periods: %w", err)
	}
	return periods, nil
}

// UpdatePeriodStatus sets the period's open/closed state.
func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string) error {
	query := `
		UPDATE financial_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, string(status), time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
