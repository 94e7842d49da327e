package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// meetingService provides governance meeting operations.
type meetingService struct {
	BaseService
	meetingRepo portsrepo.MeetingRepositoryFacade
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(meetingRepo portsrepo.MeetingRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.MeetingSvcFacade {
	return &meetingService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		meetingRepo: meetingRepo,
	}
}

var _ portssvc.MeetingSvcFacade = (*meetingService)(nil)

// CreateMeeting schedules a meeting in status planerad.
func (s *meetingService) CreateMeeting(ctx context.Context, organizationID string, req dto.CreateMeetingRequest, requestingUserID string) (*domain.Meeting, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	meeting := domain.Meeting{
		MeetingID:      uuid.NewString(),
		OrganizationID: organizationID,
		MeetingType:    domain.MeetingType(req.MeetingType),
		Title:          req.Title,
		MeetingDate:    req.MeetingDate,
		Location:       req.Location,
		Status:         domain.MeetingPlanned,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.meetingRepo.SaveMeeting(ctx, meeting); err != nil {
		s.LogError(ctx, err, "failed to save meeting", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}

	s.LogInfo(ctx, "meeting scheduled",
		slog.String("meeting_id", meeting.MeetingID),
		slog.String("meeting_type", req.MeetingType))
	return &meeting, nil
}

// GetMeetingByID retrieves one meeting with motions and decisions.
func (s *meetingService) GetMeetingByID(ctx context.Context, organizationID, meetingID, requestingUserID string) (*domain.Meeting, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	meeting, err := s.meetingRepo.FindMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return meeting, nil
}

// ListMeetings lists the organization's meetings.
func (s *meetingService) ListMeetings(ctx context.Context, organizationID, requestingUserID string) ([]domain.Meeting, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.meetingRepo.ListMeetingsByOrganization(ctx, organizationID)
}

// UpdateMeetingStatus advances the meeting lifecycle one step.
func (s *meetingService) UpdateMeetingStatus(ctx context.Context, organizationID, meetingID string, status domain.MeetingStatus, requestingUserID string) (*domain.Meeting, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	meeting, err := s.meetingRepo.FindMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if !meeting.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move meeting from %s to %s", apperrors.ErrValidation, meeting.Status, status)
	}

	now := time.Now()
	if err := s.meetingRepo.UpdateMeetingStatus(ctx, meetingID, status, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update meeting status: %w", err)
	}
	meeting.Status = status
	meeting.LastUpdatedAt = now
	meeting.LastUpdatedBy = requestingUserID

	s.LogInfo(ctx, "meeting status updated",
		slog.String("meeting_id", meetingID),
		slog.String("status", string(status)))
	return meeting, nil
}

// AddMotion adds an agenda item to a meeting that has not yet been held.
func (s *meetingService) AddMotion(ctx context.Context, organizationID, meetingID string, req dto.CreateMotionRequest, requestingUserID string) (*domain.Motion, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	meeting, err := s.meetingRepo.FindMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if meeting.Status == domain.MeetingHeld || meeting.Status == domain.MeetingMinutesSigned {
		return nil, fmt.Errorf("%w: cannot add motions to a held meeting", apperrors.ErrValidation)
	}

	now := time.Now()
	motion := domain.Motion{
		MotionID:    uuid.NewString(),
		MeetingID:   meetingID,
		Title:       req.Title,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.meetingRepo.SaveMotion(ctx, motion); err != nil {
		s.LogError(ctx, err, "failed to save motion", slog.String("meeting_id", meetingID))
		return nil, fmt.Errorf("failed to save motion: %w", err)
	}
	return &motion, nil
}

// RecordDecision records the outcome for a motion on a held meeting.
func (s *meetingService) RecordDecision(ctx context.Context, organizationID, meetingID, motionID string, req dto.RecordDecisionRequest, requestingUserID string) (*domain.Decision, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	meeting, err := s.meetingRepo.FindMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if meeting.Status != domain.MeetingHeld && meeting.Status != domain.MeetingMinutesSigned {
		return nil, fmt.Errorf("%w: decisions can only be recorded on held meetings", apperrors.ErrValidation)
	}

	var motion *domain.Motion
	for i := range meeting.Motions {
		if meeting.Motions[i].MotionID == motionID {
			motion = &meeting.Motions[i]
			break
		}
	}
	if motion == nil {
		return nil, fmt.Errorf("%w: motion %s not found on meeting %s", apperrors.ErrNotFound, motionID, meetingID)
	}
	if motion.Decision != nil {
		return nil, fmt.Errorf("%w: motion %s already has a decision", apperrors.ErrConflict, motionID)
	}

	decision := domain.Decision{
		DecisionID: uuid.NewString(),
		MotionID:   motionID,
		Outcome:    domain.DecisionOutcome(req.Outcome),
		Notes:      req.Notes,
		DecidedAt:  time.Now(),
	}
	if err := s.meetingRepo.SaveDecision(ctx, decision); err != nil {
		s.LogError(ctx, err, "failed to save decision", slog.String("motion_id", motionID))
		return nil, fmt.Errorf("failed to save decision: %w", err)
	}

	s.LogInfo(ctx, "decision recorded",
		slog.String("motion_id", motionID),
		slog.String("outcome", req.Outcome))
	return &decision, nil
}

// GetMeetingStats aggregates meeting counts per status.
func (s *meetingService) GetMeetingStats(ctx context.Context, organizationID, requestingUserID string) (*domain.MeetingStats, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.meetingRepo.GetMeetingStats(ctx, organizationID)
}
