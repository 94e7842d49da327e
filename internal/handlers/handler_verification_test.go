package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
	"github.com/klarbok/klarbok_backend/internal/middleware"
)

// --- Mock VerificationService ---
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) CreateVerification(ctx context.Context, organizationID string, req dto.CreateVerificationRequest, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error) {
	args := m.Called(ctx, organizationID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Verification), args.Get(1).([]domain.VerificationRow), args.Error(2)
}

func (m *MockVerificationService) GetVerificationByID(ctx context.Context, organizationID, verificationID, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error) {
	args := m.Called(ctx, organizationID, verificationID, requestingUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Verification), args.Get(1).([]domain.VerificationRow), args.Error(2)
}

func (m *MockVerificationService) ListVerifications(ctx context.Context, organizationID string, limit int, nextToken *string, requestingUserID string) ([]domain.Verification, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken, requestingUserID)
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

func (m *MockVerificationService) ReverseVerification(ctx context.Context, organizationID, verificationID, requestingUserID string) (*domain.Verification, []domain.VerificationRow, error) {
	args := m.Called(ctx, organizationID, verificationID, requestingUserID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Verification), args.Get(1).([]domain.VerificationRow), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.VerificationSvcFacade = (*MockVerificationService)(nil)

// --- Test Suite ---
type VerificationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockVerificationService
	jwtSecret   string
}

func (suite *VerificationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "klarbok-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *VerificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockVerificationService)

	org := suite.router.Group("/api/v1/organizations/:organization_id")
	registerVerificationRoutes(org, suite.mockService)
}

// --- Test Cases ---

func (suite *VerificationHandlerTestSuite) TestCreateVerification_Success() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	reqBody := dto.CreateVerificationRequest{
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Försäljning mars",
		Rows: []dto.CreateVerificationRowRequest{
			{Account: "1930", Debit: decimal.NewFromInt(1250)},
			{Account: "3001", Credit: decimal.NewFromInt(1250)},
		},
	}

	expected := &domain.Verification{
		VerificationID: uuid.NewString(),
		OrganizationID: orgID,
		SeriesNumber:   1,
		Date:           reqBody.Date,
		Description:    reqBody.Description,
		Status:         domain.VerificationPosted,
	}
	expectedRows := []domain.VerificationRow{
		{RowID: uuid.NewString(), VerificationID: expected.VerificationID, Account: "1930", Debit: decimal.NewFromInt(1250)},
		{RowID: uuid.NewString(), VerificationID: expected.VerificationID, Account: "3001", Credit: decimal.NewFromInt(1250)},
	}

	suite.mockService.On("CreateVerification",
		mock.Anything,
		orgID,
		mock.MatchedBy(func(req dto.CreateVerificationRequest) bool {
			return req.Description == reqBody.Description && len(req.Rows) == 2
		}),
		userID,
	).Return(expected, expectedRows, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/verifications", orgID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.VerificationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.VerificationID, resp.VerificationID)
	suite.Equal(int64(1), resp.SeriesNumber)
	suite.Len(resp.Rows, 2)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VerificationHandlerTestSuite) TestCreateVerification_TooFewRows() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	reqBody := dto.CreateVerificationRequest{
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Enradig",
		Rows: []dto.CreateVerificationRowRequest{
			{Account: "1930", Debit: decimal.NewFromInt(100)},
		},
	}

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/verifications", orgID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// Binding rejects fewer than two rows before the service is reached.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateVerification")
}

func (suite *VerificationHandlerTestSuite) TestGetVerification_NotFound() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	verificationID := uuid.NewString()

	suite.mockService.On("GetVerificationByID", mock.Anything, orgID, verificationID, userID).
		Return(nil, nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/verifications/%s", orgID, verificationID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VerificationHandlerTestSuite) TestReverseVerification_Conflict() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	verificationID := uuid.NewString()

	suite.mockService.On("ReverseVerification", mock.Anything, orgID, verificationID, userID).
		Return(nil, nil, fmt.Errorf("%w: verification is already reversed", apperrors.ErrConflict)).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/verifications/%s/reverse", orgID, verificationID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VerificationHandlerTestSuite) TestListVerifications_RequiresToken() {
	orgID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/verifications", orgID), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListVerifications")
}

// --- Run Test Suite ---
func TestVerificationHandler(t *testing.T) {
	suite.Run(t, new(VerificationHandlerTestSuite))
}
