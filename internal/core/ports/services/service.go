package services

// ServiceContainer holds all service interfaces for handler registration.
type ServiceContainer struct {
	VerificationSvc VerificationSvcFacade
	ReportingSvc    ReportingSvcFacade
	MeetingSvc      MeetingSvcFacade
	PeriodSvc       PeriodSvcFacade
	UserSvc         UserSvcFacade
	OrganizationSvc OrganizationSvcFacade
	TokenSvc        TokenSvc
	GoogleOAuthSvc  GoogleOAuthSvcFacade
}
