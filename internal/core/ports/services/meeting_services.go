package services

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// MeetingSvcFacade defines the governance meeting operations.
type MeetingSvcFacade interface {
	CreateMeeting(ctx context.Context, organizationID string, req dto.CreateMeetingRequest, requestingUserID string) (*domain.Meeting, error)
	GetMeetingByID(ctx context.Context, organizationID, meetingID, requestingUserID string) (*domain.Meeting, error)
	ListMeetings(ctx context.Context, organizationID, requestingUserID string) ([]domain.Meeting, error)

	// UpdateMeetingStatus advances the meeting lifecycle one step. Skipping a
	// step or moving backwards fails with apperrors.ErrValidation.
	UpdateMeetingStatus(ctx context.Context, organizationID, meetingID string, status domain.MeetingStatus, requestingUserID string) (*domain.Meeting, error)

	AddMotion(ctx context.Context, organizationID, meetingID string, req dto.CreateMotionRequest, requestingUserID string) (*domain.Motion, error)

	// RecordDecision records the outcome for a motion. Decisions can only be
	// recorded on meetings that have been held.
	RecordDecision(ctx context.Context, organizationID, meetingID, motionID string, req dto.RecordDecisionRequest, requestingUserID string) (*domain.Decision, error)

	GetMeetingStats(ctx context.Context, organizationID, requestingUserID string) (*domain.MeetingStats, error)
}
