package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/core/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// --- Mock VerificationRepository (based on VerificationService usage) ---
type MockVerificationRepository struct {
	mock.Mock
	SaveVerificationFn         func(ctx context.Context, verification domain.Verification, rows []domain.VerificationRow) (*domain.Verification, error)
	MarkReversedFn             func(ctx context.Context, verificationID, reversingVerificationID, updatedBy string, updatedAt time.Time) error
	FindVerificationByIDFn     func(ctx context.Context, verificationID string) (*domain.Verification, error)
	FindRowsByVerificationIDFn func(ctx context.Context, verificationID string) ([]domain.VerificationRow, error)
	ListVerificationsByOrgFn   func(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Verification, *string, error)
	FindRowsByOrganizationFn   func(ctx context.Context, organizationID string, from, to time.Time) ([]domain.VerificationRow, error)
}

func (m *MockVerificationRepository) SaveVerification(ctx context.Context, verification domain.Verification, rows []domain.VerificationRow) (*domain.Verification, error) {
	if m.SaveVerificationFn != nil {
		return m.SaveVerificationFn(ctx, verification, rows)
	}
	args := m.Called(ctx, verification, rows)
	var v *domain.Verification
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Verification)
	}
	return v, args.Error(1)
}

func (m *MockVerificationRepository) MarkReversed(ctx context.Context, verificationID string, reversingVerificationID string, updatedBy string, updatedAt time.Time) error {
	if m.MarkReversedFn != nil {
		return m.MarkReversedFn(ctx, verificationID, reversingVerificationID, updatedBy, updatedAt)
	}
	args := m.Called(ctx, verificationID, reversingVerificationID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindVerificationByID(ctx context.Context, verificationID string) (*domain.Verification, error) {
	if m.FindVerificationByIDFn != nil {
		return m.FindVerificationByIDFn(ctx, verificationID)
	}
	args := m.Called(ctx, verificationID)
	var v *domain.Verification
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Verification)
	}
	return v, args.Error(1)
}

func (m *MockVerificationRepository) FindRowsByVerificationID(ctx context.Context, verificationID string) ([]domain.VerificationRow, error) {
	if m.FindRowsByVerificationIDFn != nil {
		return m.FindRowsByVerificationIDFn(ctx, verificationID)
	}
	args := m.Called(ctx, verificationID)
	var rows []domain.VerificationRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.VerificationRow)
	}
	return rows, args.Error(1)
}

func (m *MockVerificationRepository) ListVerificationsByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Verification, *string, error) {
	if m.ListVerificationsByOrgFn != nil {
		return m.ListVerificationsByOrgFn(ctx, organizationID, limit, nextToken)
	}
	args := m.Called(ctx, organizationID, limit, nextToken)
	var verifications []domain.Verification
	if args.Get(0) != nil {
		verifications = args.Get(0).([]domain.Verification)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return verifications, token, args.Error(2)
}

func (m *MockVerificationRepository) FindRowsByOrganization(ctx context.Context, organizationID string, from, to time.Time) ([]domain.VerificationRow, error) {
	if m.FindRowsByOrganizationFn != nil {
		return m.FindRowsByOrganizationFn(ctx, organizationID, from, to)
	}
	args := m.Called(ctx, organizationID, from, to)
	var rows []domain.VerificationRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.VerificationRow)
	}
	return rows, args.Error(1)
}

// --- Test Suite ---
type VerificationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVerificationRepository
	service  portssvc.VerificationSvcFacade

	orgID  string
	userID string
}

func (suite *VerificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVerificationRepository)
	suite.service = services.NewVerificationService(suite.mockRepo, nil)
	suite.orgID = "org-1"
	suite.userID = "user-1"
}

func balancedRequest() dto.CreateVerificationRequest {
	return dto.CreateVerificationRequest{
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Försäljning mars",
		Rows: []dto.CreateVerificationRowRequest{
			{Account: "1930", Debit: decimal.NewFromInt(1250)},
			{Account: "3001", Credit: decimal.NewFromInt(1000)},
			{Account: "2611", Credit: decimal.NewFromInt(250)},
		},
	}
}

// --- CreateVerification Tests ---

func (suite *VerificationServiceTestSuite) TestCreateVerification_Success() {
	ctx := context.Background()
	req := balancedRequest()

	suite.mockRepo.SaveVerificationFn = func(ctx context.Context, v domain.Verification, rows []domain.VerificationRow) (*domain.Verification, error) {
		suite.Equal(suite.orgID, v.OrganizationID)
		suite.Equal(domain.VerificationPosted, v.Status)
		suite.Len(rows, 3)
		saved := v
		saved.SeriesNumber = 7
		return &saved, nil
	}

	verification, rows, err := suite.service.CreateVerification(ctx, suite.orgID, req, suite.userID)

	suite.NoError(err)
	suite.NotNil(verification)
	suite.Equal(int64(7), verification.SeriesNumber)
	suite.Len(rows, 3)
	for _, r := range rows {
		suite.Equal(verification.VerificationID, r.VerificationID)
		suite.Equal(req.Date, r.Date)
	}
}

func (suite *VerificationServiceTestSuite) TestCreateVerification_Unbalanced() {
	ctx := context.Background()
	req := balancedRequest()
	req.Rows[0].Debit = decimal.NewFromInt(9999)

	verification, rows, err := suite.service.CreateVerification(ctx, suite.orgID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(verification)
	suite.Nil(rows)
}

func (suite *VerificationServiceTestSuite) TestCreateVerification_NegativeAmount() {
	ctx := context.Background()
	req := balancedRequest()
	req.Rows[0].Debit = decimal.NewFromInt(-1250)
	req.Rows[1].Credit = decimal.NewFromInt(-1000)
	req.Rows[2].Credit = decimal.NewFromInt(-250)

	_, _, err := suite.service.CreateVerification(ctx, suite.orgID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetVerificationByID Tests ---

func (suite *VerificationServiceTestSuite) TestGetVerification_WrongOrganization() {
	ctx := context.Background()

	suite.mockRepo.FindVerificationByIDFn = func(ctx context.Context, verificationID string) (*domain.Verification, error) {
		return &domain.Verification{VerificationID: verificationID, OrganizationID: "someone-else"}, nil
	}

	verification, rows, err := suite.service.GetVerificationByID(ctx, suite.orgID, "ver-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(verification)
	suite.Nil(rows)
}

// --- ListVerifications Tests ---

func (suite *VerificationServiceTestSuite) TestListVerifications_ClampsLimit() {
	ctx := context.Background()

	var gotLimit int
	suite.mockRepo.ListVerificationsByOrgFn = func(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.Verification, *string, error) {
		gotLimit = limit
		return nil, nil, nil
	}

	_, _, err := suite.service.ListVerifications(ctx, suite.orgID, 0, nil, suite.userID)
	suite.NoError(err)
	suite.Equal(20, gotLimit)

	_, _, err = suite.service.ListVerifications(ctx, suite.orgID, 500, nil, suite.userID)
	suite.NoError(err)
	suite.Equal(20, gotLimit)

	_, _, err = suite.service.ListVerifications(ctx, suite.orgID, 50, nil, suite.userID)
	suite.NoError(err)
	suite.Equal(50, gotLimit)
}

// --- ReverseVerification Tests ---

func (suite *VerificationServiceTestSuite) TestReverseVerification_Success() {
	ctx := context.Background()
	originalID := "ver-original"

	original := domain.Verification{
		VerificationID: originalID,
		OrganizationID: suite.orgID,
		SeriesNumber:   3,
		Description:    "Hyra mars",
		Status:         domain.VerificationPosted,
	}
	originalRows := []domain.VerificationRow{
		{RowID: "r1", VerificationID: originalID, Account: "5010", Debit: decimal.NewFromInt(8000)},
		{RowID: "r2", VerificationID: originalID, Account: "1930", Credit: decimal.NewFromInt(8000)},
	}

	suite.mockRepo.FindVerificationByIDFn = func(ctx context.Context, verificationID string) (*domain.Verification, error) {
		return &original, nil
	}
	suite.mockRepo.FindRowsByVerificationIDFn = func(ctx context.Context, verificationID string) ([]domain.VerificationRow, error) {
		return originalRows, nil
	}
	suite.mockRepo.SaveVerificationFn = func(ctx context.Context, v domain.Verification, rows []domain.VerificationRow) (*domain.Verification, error) {
		saved := v
		saved.SeriesNumber = 4
		return &saved, nil
	}
	var linkedOriginal, linkedReversal string
	suite.mockRepo.MarkReversedFn = func(ctx context.Context, verificationID, reversingVerificationID, updatedBy string, updatedAt time.Time) error {
		linkedOriginal = verificationID
		linkedReversal = reversingVerificationID
		return nil
	}

	reversal, rows, err := suite.service.ReverseVerification(ctx, suite.orgID, originalID, suite.userID)

	suite.NoError(err)
	suite.NotNil(reversal)
	suite.Equal(&originalID, reversal.OriginalVerificationID)
	suite.Contains(reversal.Description, "Rättelse av verifikation 3")
	suite.Equal(originalID, linkedOriginal)
	suite.Equal(reversal.VerificationID, linkedReversal)

	// Debits and credits must swap sides.
	suite.Len(rows, 2)
	suite.Equal("5010", rows[0].Account)
	suite.True(rows[0].Credit.Equal(decimal.NewFromInt(8000)))
	suite.True(rows[0].Debit.IsZero())
	suite.Equal("1930", rows[1].Account)
	suite.True(rows[1].Debit.Equal(decimal.NewFromInt(8000)))
	suite.True(rows[1].Credit.IsZero())
}

func (suite *VerificationServiceTestSuite) TestReverseVerification_AlreadyReversed() {
	ctx := context.Background()

	suite.mockRepo.FindVerificationByIDFn = func(ctx context.Context, verificationID string) (*domain.Verification, error) {
		return &domain.Verification{
			VerificationID: verificationID,
			OrganizationID: suite.orgID,
			Status:         domain.VerificationReversed,
		}, nil
	}

	_, _, err := suite.service.ReverseVerification(ctx, suite.orgID, "ver-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VerificationServiceTestSuite) TestReverseVerification_WrongOrganization() {
	ctx := context.Background()

	suite.mockRepo.FindVerificationByIDFn = func(ctx context.Context, verificationID string) (*domain.Verification, error) {
		return &domain.Verification{
			VerificationID: verificationID,
			OrganizationID: "someone-else",
			Status:         domain.VerificationPosted,
		}, nil
	}

	_, _, err := suite.service.ReverseVerification(ctx, suite.orgID, "ver-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestVerificationService(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
