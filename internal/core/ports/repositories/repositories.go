package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VerificationRepo VerificationRepositoryFacade
	ReportRepo       ReportRepositoryFacade
	PeriodRepo       PeriodRepositoryFacade
	MeetingRepo      MeetingRepositoryFacade
	UserRepo         UserRepositoryFacade
	OrganizationRepo OrganizationRepositoryFacade
}
