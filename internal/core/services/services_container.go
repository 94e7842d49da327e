package services

import (
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Organization service first since every other service authorizes through it.
	container.OrganizationSvc = NewOrganizationService(repos.OrganizationRepo)
	authorizer := container.OrganizationSvc.(portssvc.OrganizationAuthorizerSvc)

	container.VerificationSvc = NewVerificationService(repos.VerificationRepo, authorizer)
	container.ReportingSvc = NewReportingService(repos.VerificationRepo, repos.ReportRepo, repos.PeriodRepo, repos.OrganizationRepo, authorizer)
	container.PeriodSvc = NewPeriodService(repos.PeriodRepo, authorizer)
	container.MeetingSvc = NewMeetingService(repos.MeetingRepo, authorizer)
	container.UserSvc = NewUserService(repos.UserRepo)
	container.TokenSvc = NewTokenService(cfg)
	container.GoogleOAuthSvc = NewGoogleOAuthService(cfg)

	return container
}
