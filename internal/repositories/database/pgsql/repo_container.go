package pgsql

import (
	portsrepo "github.com/klarbok/klarbok_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VerificationRepo: newPgxVerificationRepository(dbPool),
		ReportRepo:       newPgxReportRepository(dbPool),
		PeriodRepo:       newPgxPeriodRepository(dbPool),
		MeetingRepo:      newPgxMeetingRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
	}
}
