package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/klarbok/klarbok_backend/internal/apperrors"
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/core/services"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// --- Test Suite ---
type OrganizationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrganizationRepository
	service  portssvc.OrganizationSvcFacade

	orgID  string
	userID string
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrganizationRepository)
	suite.service = services.NewOrganizationService(suite.mockRepo)
	suite.orgID = "org-1"
	suite.userID = "user-1"
}

func (suite *OrganizationServiceTestSuite) membershipWithRole(role domain.OrganizationRole) {
	suite.mockRepo.FindUserOrganizationFn = func(ctx context.Context, userID, organizationID string) (*domain.UserOrganization, error) {
		return &domain.UserOrganization{
			UserID:         userID,
			OrganizationID: organizationID,
			Role:           role,
		}, nil
	}
}

// --- CreateOrganization Tests ---

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_EnrollsCreatorAsAdmin() {
	ctx := context.Background()

	suite.mockRepo.SaveOrganizationFn = func(ctx context.Context, org domain.Organization) error {
		return nil
	}
	var membership domain.UserOrganization
	suite.mockRepo.AddUserToOrganizationFn = func(ctx context.Context, m domain.UserOrganization) error {
		membership = m
		return nil
	}

	org, err := suite.service.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name:      "Kulturföreningen Norr",
		OrgNumber: "802481-1234",
	}, suite.userID)

	suite.NoError(err)
	suite.Equal("12-31", org.FiscalYearEnd)
	suite.Equal(domain.RoleAdmin, membership.Role)
	suite.Equal(suite.userID, membership.UserID)
	suite.Equal(org.OrganizationID, membership.OrganizationID)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_InvalidFiscalYearEnd() {
	ctx := context.Background()

	org, err := suite.service.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name:          "Trasig",
		FiscalYearEnd: "31-12",
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(org)
}

// --- AuthorizeUserAction Tests ---

func (suite *OrganizationServiceTestSuite) authorizer() portssvc.OrganizationAuthorizerSvc {
	authorizer, ok := suite.service.(portssvc.OrganizationAuthorizerSvc)
	suite.Require().True(ok, "organization service must implement the authorizer")
	return authorizer
}

func (suite *OrganizationServiceTestSuite) TestAuthorize_NonMemberForbidden() {
	ctx := context.Background()

	suite.mockRepo.FindUserOrganizationFn = func(ctx context.Context, userID, organizationID string) (*domain.UserOrganization, error) {
		return nil, apperrors.ErrNotFound
	}

	err := suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleReadOnly)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestAuthorize_ReadOnlyCannotWrite() {
	ctx := context.Background()
	suite.membershipWithRole(domain.RoleReadOnly)

	err := suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleMember)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestAuthorize_MemberCanWriteButNotAdminister() {
	ctx := context.Background()
	suite.membershipWithRole(domain.RoleMember)

	suite.NoError(suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleMember))
	suite.ErrorIs(suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleAdmin), apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestAuthorize_AdminCanDoEverything() {
	ctx := context.Background()
	suite.membershipWithRole(domain.RoleAdmin)

	suite.NoError(suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleReadOnly))
	suite.NoError(suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleMember))
	suite.NoError(suite.authorizer().AuthorizeUserAction(ctx, suite.userID, suite.orgID, domain.RoleAdmin))
}

func TestOrganizationService(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
