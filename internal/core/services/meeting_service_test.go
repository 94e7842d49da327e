package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/core/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// --- Mock MeetingRepository ---
type MockMeetingRepository struct {
	mock.Mock
	FindMeetingByIDFn     func(ctx context.Context, meetingID string) (*domain.Meeting, error)
	ListMeetingsFn        func(ctx context.Context, organizationID string) ([]domain.Meeting, error)
	GetMeetingStatsFn     func(ctx context.Context, organizationID string) (*domain.MeetingStats, error)
	SaveMeetingFn         func(ctx context.Context, meeting domain.Meeting) error
	UpdateMeetingStatusFn func(ctx context.Context, meetingID string, status domain.MeetingStatus, updatedBy string, updatedAt time.Time) error
	SaveMotionFn          func(ctx context.Context, motion domain.Motion) error
	SaveDecisionFn        func(ctx context.Context, decision domain.Decision) error
}

func (m *MockMeetingRepository) FindMeetingByID(ctx context.Context, meetingID string) (*domain.Meeting, error) {
	if m.FindMeetingByIDFn != nil {
		return m.FindMeetingByIDFn(ctx, meetingID)
	}
	args := m.Called(ctx, meetingID)
	var meeting *domain.Meeting
	if args.Get(0) != nil {
		meeting = args.Get(0).(*domain.Meeting)
	}
	return meeting, args.Error(1)
}

func (m *MockMeetingRepository) ListMeetingsByOrganization(ctx context.Context, organizationID string) ([]domain.Meeting, error) {
	if m.ListMeetingsFn != nil {
		return m.ListMeetingsFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var meetings []domain.Meeting
	if args.Get(0) != nil {
		meetings = args.Get(0).([]domain.Meeting)
	}
	return meetings, args.Error(1)
}

func (m *MockMeetingRepository) GetMeetingStats(ctx context.Context, organizationID string) (*domain.MeetingStats, error) {
	if m.GetMeetingStatsFn != nil {
		return m.GetMeetingStatsFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var stats *domain.MeetingStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.MeetingStats)
	}
	return stats, args.Error(1)
}

func (m *MockMeetingRepository) SaveMeeting(ctx context.Context, meeting domain.Meeting) error {
	if m.SaveMeetingFn != nil {
		return m.SaveMeetingFn(ctx, meeting)
	}
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *MockMeetingRepository) UpdateMeetingStatus(ctx context.Context, meetingID string, status domain.MeetingStatus, updatedBy string, updatedAt time.Time) error {
	if m.UpdateMeetingStatusFn != nil {
		return m.UpdateMeetingStatusFn(ctx, meetingID, status, updatedBy, updatedAt)
	}
	args := m.Called(ctx, meetingID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockMeetingRepository) SaveMotion(ctx context.Context, motion domain.Motion) error {
	if m.SaveMotionFn != nil {
		return m.SaveMotionFn(ctx, motion)
	}
	args := m.Called(ctx, motion)
	return args.Error(0)
}

func (m *MockMeetingRepository) SaveDecision(ctx context.Context, decision domain.Decision) error {
	if m.SaveDecisionFn != nil {
		return m.SaveDecisionFn(ctx, decision)
	}
	args := m.Called(ctx, decision)
	return args.Error(0)
}

// --- Test Suite ---
type MeetingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMeetingRepository
	service  portssvc.MeetingSvcFacade

	orgID  string
	userID string
}

func (suite *MeetingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMeetingRepository)
	suite.service = services.NewMeetingService(suite.mockRepo, nil)
	suite.orgID = "org-1"
	suite.userID = "user-1"
}

func (suite *MeetingServiceTestSuite) meetingInStatus(status domain.MeetingStatus, motions ...domain.Motion) *domain.Meeting {
	return &domain.Meeting{
		MeetingID:      "meeting-1",
		OrganizationID: suite.orgID,
		MeetingType:    domain.MeetingAnnual,
		Title:          "Årsmöte 2025",
		MeetingDate:    time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC),
		Status:         status,
		Motions:        motions,
	}
}

// --- CreateMeeting Tests ---

func (suite *MeetingServiceTestSuite) TestCreateMeeting_StartsPlanned() {
	ctx := context.Background()

	var saved domain.Meeting
	suite.mockRepo.SaveMeetingFn = func(ctx context.Context, meeting domain.Meeting) error {
		saved = meeting
		return nil
	}

	meeting, err := suite.service.CreateMeeting(ctx, suite.orgID, dto.CreateMeetingRequest{
		MeetingType: "ARSMOTE",
		Title:       "Årsmöte 2025",
		MeetingDate: time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC),
	}, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.MeetingPlanned, meeting.Status)
	suite.Equal(domain.MeetingPlanned, saved.Status)
	suite.Equal(suite.orgID, saved.OrganizationID)
}

// --- UpdateMeetingStatus Tests ---

func (suite *MeetingServiceTestSuite) TestUpdateMeetingStatus_OneStepForward() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingPlanned), nil
	}
	suite.mockRepo.UpdateMeetingStatusFn = func(ctx context.Context, meetingID string, status domain.MeetingStatus, updatedBy string, updatedAt time.Time) error {
		suite.Equal(domain.MeetingNoticeSent, status)
		return nil
	}

	meeting, err := suite.service.UpdateMeetingStatus(ctx, suite.orgID, "meeting-1", domain.MeetingNoticeSent, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.MeetingNoticeSent, meeting.Status)
}

func (suite *MeetingServiceTestSuite) TestUpdateMeetingStatus_RejectsSkippingSteps() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingPlanned), nil
	}

	_, err := suite.service.UpdateMeetingStatus(ctx, suite.orgID, "meeting-1", domain.MeetingHeld, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MeetingServiceTestSuite) TestUpdateMeetingStatus_RejectsMovingBackwards() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingHeld), nil
	}

	_, err := suite.service.UpdateMeetingStatus(ctx, suite.orgID, "meeting-1", domain.MeetingNoticeSent, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MeetingServiceTestSuite) TestUpdateMeetingStatus_TerminalStatus() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingMinutesSigned), nil
	}

	_, err := suite.service.UpdateMeetingStatus(ctx, suite.orgID, "meeting-1", domain.MeetingPlanned, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- AddMotion Tests ---

func (suite *MeetingServiceTestSuite) TestAddMotion_Success() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingNoticeSent), nil
	}
	suite.mockRepo.SaveMotionFn = func(ctx context.Context, motion domain.Motion) error {
		return nil
	}

	motion, err := suite.service.AddMotion(ctx, suite.orgID, "meeting-1", dto.CreateMotionRequest{
		Title: "Val av styrelse",
	}, suite.userID)

	suite.NoError(err)
	suite.Equal("meeting-1", motion.MeetingID)
	suite.Equal("Val av styrelse", motion.Title)
}

func (suite *MeetingServiceTestSuite) TestAddMotion_RejectedAfterMeetingHeld() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingHeld), nil
	}

	_, err := suite.service.AddMotion(ctx, suite.orgID, "meeting-1", dto.CreateMotionRequest{
		Title: "För sent",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- RecordDecision Tests ---

func (suite *MeetingServiceTestSuite) TestRecordDecision_Success() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingHeld, domain.Motion{
			MotionID:  "motion-1",
			MeetingID: "meeting-1",
			Title:     "Val av styrelse",
		}), nil
	}
	var saved domain.Decision
	suite.mockRepo.SaveDecisionFn = func(ctx context.Context, decision domain.Decision) error {
		saved = decision
		return nil
	}

	decision, err := suite.service.RecordDecision(ctx, suite.orgID, "meeting-1", "motion-1", dto.RecordDecisionRequest{
		Outcome: "bifall",
	}, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.DecisionApproved, decision.Outcome)
	suite.Equal("motion-1", saved.MotionID)
}

func (suite *MeetingServiceTestSuite) TestRecordDecision_RejectedBeforeMeetingHeld() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingNoticeSent, domain.Motion{MotionID: "motion-1"}), nil
	}

	_, err := suite.service.RecordDecision(ctx, suite.orgID, "meeting-1", "motion-1", dto.RecordDecisionRequest{
		Outcome: "bifall",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MeetingServiceTestSuite) TestRecordDecision_AlreadyDecided() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingHeld, domain.Motion{
			MotionID: "motion-1",
			Decision: &domain.Decision{DecisionID: "decision-1", Outcome: domain.DecisionApproved},
		}), nil
	}

	_, err := suite.service.RecordDecision(ctx, suite.orgID, "meeting-1", "motion-1", dto.RecordDecisionRequest{
		Outcome: "avslag",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *MeetingServiceTestSuite) TestRecordDecision_UnknownMotion() {
	ctx := context.Background()

	suite.mockRepo.FindMeetingByIDFn = func(ctx context.Context, meetingID string) (*domain.Meeting, error) {
		return suite.meetingInStatus(domain.MeetingHeld), nil
	}

	_, err := suite.service.RecordDecision(ctx, suite.orgID, "meeting-1", "nope", dto.RecordDecisionRequest{
		Outcome: "bifall",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMeetingService(t *testing.T) {
	suite.Run(t, new(MeetingServiceTestSuite))
}
