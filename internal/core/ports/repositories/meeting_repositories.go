package repositories

import (
	"context"
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// MeetingReader defines read operations for governance meetings.
type MeetingReader interface {
	// FindMeetingByID retrieves a meeting with its motions and decisions.
	FindMeetingByID(ctx context.Context, meetingID string) (*domain.Meeting, error)

	// ListMeetingsByOrganization retrieves all meetings for an organization,
	// newest meeting date first, without nested motions.
	ListMeetingsByOrganization(ctx context.Context, organizationID string) ([]domain.Meeting, error)

	// GetMeetingStats aggregates meeting counts per status.
	GetMeetingStats(ctx context.Context, organizationID string) (*domain.MeetingStats, error)
}

// MeetingWriter defines write operations for governance meetings.
type MeetingWriter interface {
	SaveMeeting(ctx context.Context, meeting domain.Meeting) error
	UpdateMeetingStatus(ctx context.Context, meetingID string, status domain.MeetingStatus, updatedBy string, updatedAt time.Time) error
	SaveMotion(ctx context.Context, motion domain.Motion) error
	SaveDecision(ctx context.Context, decision domain.Decision) error
}

// MeetingRepositoryFacade combines all meeting repository interfaces.
type MeetingRepositoryFacade interface {
	MeetingReader
	MeetingWriter
}
