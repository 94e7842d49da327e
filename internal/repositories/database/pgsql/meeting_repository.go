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

type PgxMeetingRepository struct {
	BaseRepository
}

// newPgxMeetingRepository creates a new repository for governance meetings.
func newPgxMeetingRepository(pool *pgxpool.Pool) portsrepo.MeetingRepositoryFacade {
	return &PgxMeetingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MeetingRepositoryFacade = (*PgxMeetingRepository)(nil)

const meetingColumns = `
	meeting_id, organization_id, meeting_type, title, meeting_date, location, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMeeting(row pgx.Row) (*models.Meeting, error) {
	var m models.Meeting
	err := row.Scan(
		&m.MeetingID,
		&m.OrganizationID,
		&m.MeetingType,
		&m.Title,
		&m.MeetingDate,
		&m.Location,
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

// SaveMeeting inserts a meeting.
func (r *PgxMeetingRepository) SaveMeeting(ctx context.Context, meeting domain.Meeting) error {
	m := mapping.ToModelMeeting(meeting)
	query := `
		INSERT INTO meetings (` + meetingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MeetingID,
		m.OrganizationID,
		m.MeetingType,
		m.Title,
		m.MeetingDate,
		m.Location,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meeting %s: %w", m.MeetingID, err)
	}
	return nil
}

// FindMeetingByID retrieves a meeting with its motions and decisions.
func (r *PgxMeetingRepository) FindMeetingByID(ctx context.Context, meetingID string) (*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE meeting_id = $1;`
	m, err := scanMeeting(r.Pool.QueryRow(ctx, query, meetingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find meeting %s: %w", meetingID, err)
	}
	meeting := mapping.ToDomainMeeting(*m)

	motionQuery := `
		SELECT mo.motion_id, mo.meeting_id, mo.title, mo.description,
		       mo.created_at, mo.created_by, mo.last_updated_at, mo.last_updated_by,
		       d.decision_id, d.outcome, d.notes, d.decided_at
		FROM motions mo
		LEFT JOIN decisions d ON d.motion_id = mo.motion_id
		WHERE mo.meeting_id = $1
		ORDER BY mo.created_at, mo.motion_id;
	`
	pgRows, err := r.Pool.Query(ctx, motionQuery, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query motions: %w", err)
	}
	defer pgRows.Close()

	for pgRows.Next() {
		var mo models.Motion
		var decisionID, outcome, notes *string
		var decidedAt *time.Time
		err := pgRows.Scan(
			&mo.MotionID,
			&mo.MeetingID,
			&mo.Title,
			&mo.Description,
			&mo.CreatedAt,
			&mo.CreatedBy,
			&mo.LastUpdatedAt,
			&mo.LastUpdatedBy,
			&decisionID,
			&outcome,
			&notes,
			&decidedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan motion: %w", err)
		}

		var decision *models.Decision
		if decisionID != nil {
			decision = &models.Decision{
				DecisionID: *decisionID,
				MotionID:   mo.MotionID,
				Outcome:    *outcome,
				DecidedAt:  *decidedAt,
			}
			if notes != nil {
				decision.Notes = *notes
			}
		}
		meeting.Motions = append(meeting.Motions, mapping.ToDomainMotion(mo, decision))
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate motions: %w", err)
	}
	return &meeting, nil
}

// ListMeetingsByOrganization retrieves all meetings, newest meeting date first.
func (r *PgxMeetingRepository) ListMeetingsByOrganization(ctx context.Context, organizationID string) ([]domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE organization_id = $1 ORDER BY meeting_date DESC;`
	pgRows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer pgRows.Close()

	var meetings []domain.Meeting
	for pgRows.Next() {
		m, err := scanMeeting(pgRows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, mapping.ToDomainMeeting(*m))
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetings: %w", err)
	}
	return meetings, nil
}

// UpdateMeetingStatus sets the meeting lifecycle status.
func (r *PgxMeetingRepository) UpdateMeetingStatus(ctx context.Context, meetingID string, status domain.MeetingStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE meetings
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE meeting_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, meetingID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update meeting %s: %w", meetingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveMotion inserts a motion.
func (r *PgxMeetingRepository) SaveMotion(ctx context.Context, motion domain.Motion) error {
	query := `
		INSERT INTO motions (motion_id, meeting_id, title, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		motion.MotionID,
		motion.MeetingID,
		motion.Title,
		motion.Description,
		motion.CreatedAt,
		motion.CreatedBy,
		motion.LastUpdatedAt,
		motion.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert motion %s: %w", motion.MotionID, err)
	}
	return nil
}

// SaveDecision inserts a decision for a motion.
func (r *PgxMeetingRepository) SaveDecision(ctx context.Context, decision domain.Decision) error {
	query := `
		INSERT INTO decisions (decision_id, motion_id, outcome, notes, decided_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		decision.DecisionID,
		decision.MotionID,
		string(decision.Outcome),
		decision.Notes,
		decision.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert decision %s: %w", decision.DecisionID, err)
	}
	return nil
}

// GetMeetingStats aggregates meeting counts per status.
func (r *PgxMeetingRepository) GetMeetingStats(ctx context.Context, organizationID string) (*domain.MeetingStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'planerad'),
		       COUNT(*) FILTER (WHERE status = 'kallad'),
		       COUNT(*) FILTER (WHERE status = 'genomford'),
		       COUNT(*) FILTER (WHERE status = 'protokoll_signerat')
		FROM meetings
		WHERE organization_id = $1;
	`
	var stats domain.MeetingStats
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&stats.Total,
		&stats.Planned,
		&stats.NoticeSent,
		&stats.Held,
		&stats.MinutesSigned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate meeting stats: %w", err)
	}
	return &stats, nil
}
