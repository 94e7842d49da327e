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
	"github.com/klarbok/klarbok_backend/internal/utils/pagination"
)

type PgxVerificationRepository struct {
	BaseRepository
}

// newPgxVerificationRepository creates a new repository for verification data.
func newPgxVerificationRepository(pool *pgxpool.Pool) portsrepo.VerificationRepositoryFacade {
	return &PgxVerificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VerificationRepositoryFacade = (*PgxVerificationRepository)(nil)

const verificationColumns = `
	verification_id, organization_id, series_number, verification_date, description, status,
	original_verification_id, reversing_verification_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVerification(row pgx.Row) (*models.Verification, error) {
	var m models.Verification
	err := row.Scan(
		&m.VerificationID,
		&m.OrganizationID,
		&m.SeriesNumber,
		&m.Date,
		&m.Description,
		&m.Status,
		&m.OriginalVerificationID,
		&m.ReversingVerificationID,
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

// SaveVerification persists a verification and its rows atomically. The series
// number is assigned inside the transaction under an advisory lock so numbering
// within an organization stays gapless under concurrency.
func (r *PgxVerificationRepository) SaveVerification(ctx context.Context, verification domain.Verification, rows []domain.VerificationRow) (*domain.Verification, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Serialize series numbering per organization.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, verification.OrganizationID); err != nil {
		return nil, fmt.Errorf("failed to acquire series lock: %w", err)
	}

	var seriesNumber int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(series_number), 0) + 1 FROM verifications WHERE organization_id = $1`,
		verification.OrganizationID,
	).Scan(&seriesNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to assign series number: %w", err)
	}
	verification.SeriesNumber = seriesNumber

	m := mapping.ToModelVerification(verification)
	insertVerification := `
		INSERT INTO verifications (` + verificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertVerification,
		m.VerificationID,
		m.OrganizationID,
		m.SeriesNumber,
		m.Date,
		m.Description,
		m.Status,
		m.OriginalVerificationID,
		m.ReversingVerificationID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert verification %s: %w", m.VerificationID, err)
	}

	batch := &pgx.Batch{}
	insertRow := `
		INSERT INTO verification_rows (row_id, verification_id, account, debit, credit, row_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, row := range rows {
		mr := mapping.ToModelVerificationRow(row)
		batch.Queue(insertRow, mr.RowID, mr.VerificationID, mr.Account, mr.Debit, mr.Credit, mr.Date, mr.Description)
	}
	br := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, fmt.Errorf("failed to insert verification rows: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close row batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &verification, nil
}

// MarkReversed links an original verification to the one reversing it.
func (r *PgxVerificationRepository) MarkReversed(ctx context.Context, verificationID string, reversingVerificationID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE verifications
		SET status = $2, reversing_verification_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE verification_id = $1 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		verificationID,
		models.VerificationReversed,
		reversingVerificationID,
		updatedAt,
		updatedBy,
		models.VerificationPosted,
	)
	if err != nil {
		return fmt.Errorf("failed to mark verification %s reversed: %w", verificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: verification %s is not in posted state", apperrors.ErrConflict, verificationID)
	}
	return nil
}

// FindVerificationByID retrieves a specific verification by its unique identifier.
func (r *PgxVerificationRepository) FindVerificationByID(ctx context.Context, verificationID string) (*domain.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE verification_id = $1;`
	m, err := scanVerification(r.Pool.QueryRow(ctx, query, verificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find verification %s: %w", verificationID, err)
	}
	d := mapping.ToDomainVerification(*m)
	return &d, nil
}

// FindRowsByVerificationID retrieves all rows belonging to one verification.
func (r *PgxVerificationRepository) FindRowsByVerificationID(ctx context.Context, verificationID string) ([]domain.VerificationRow, error) {
	query := `
		SELECT row_id, verification_id, account, debit, credit, row_date, description
		FROM verification_rows
		WHERE verification_id = $1
		ORDER BY account, row_id;
	`
	pgRows, err := r.Pool.Query(ctx, query, verificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verification rows: %w", err)
	}
	defer pgRows.Close()

	var modelRows []models.VerificationRow
	for pgRows.Next() {
		var m models.VerificationRow
		if err := pgRows.Scan(&m.RowID, &m.VerificationID, &m.Account, &m.Debit, &m.Credit, &m.Date, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan verification row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verification rows: %w", err)
	}
	return mapping.ToDomainVerificationRows(modelRows), nil
}

// ListVerificationsByOrganization retrieves a paginated list of verifications,
// newest first, using a (date, created_at) keyset cursor.
func (r *PgxVerificationRepository) ListVerificationsByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Verification, *string, error) {
	args := []interface{}{organizationID, limit + 1}
	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE organization_id = $1`

	if nextToken != nil && *nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (verification_date, created_at) < ($3, $4)`
		args = append(args, date, createdAt)
	}
	query += ` ORDER BY verification_date DESC, created_at DESC LIMIT $2;`

	pgRows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list verifications: %w", err)
	}
	defer pgRows.Close()

	var verifications []domain.Verification
	for pgRows.Next() {
		m, err := scanVerification(pgRows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan verification: %w", err)
		}
		verifications = append(verifications, mapping.ToDomainVerification(*m))
	}
	if err := pgRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate verifications: %w", err)
	}

	var token *string
	if len(verifications) > limit {
		verifications = verifications[:limit]
		last := verifications[len(verifications)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}
	return verifications, token, nil
}

// FindRowsByOrganization retrieves every verification row for an organization
// dated inside [from, to]. A zero from means no lower bound.
func (r *PgxVerificationRepository) FindRowsByOrganization(ctx context.Context, organizationID string, from, to time.Time) ([]domain.VerificationRow, error) {
	query := `
		SELECT vr.row_id, vr.verification_id, vr.account, vr.debit, vr.credit, vr.row_date, vr.description
		FROM verification_rows vr
		JOIN verifications v ON v.verification_id = vr.verification_id
		WHERE v.organization_id = $1 AND vr.row_date <= $2
	`
	args := []interface{}{organizationID, to}
	if !from.IsZero() {
		query += ` AND vr.row_date >= $3`
		args = append(args, from)
	}
	query += ` ORDER BY vr.row_date, vr.row_id;`

	pgRows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger rows: %w", err)
	}
	defer pgRows.Close()

	var modelRows []models.VerificationRow
	for pgRows.Next() {
		var m models.VerificationRow
		if err := pgRows.Scan(&m.RowID, &m.VerificationID, &m.Account, &m.Debit, &m.Credit, &m.Date, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger rows: %w", err)
	}
	return mapping.ToDomainVerificationRows(modelRows), nil
}
