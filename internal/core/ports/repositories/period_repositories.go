package repositories

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// PeriodRepositoryFacade defines persistence operations for financial periods.
type PeriodRepositoryFacade interface {
	SavePeriod(ctx context.Context, period domain.FinancialPeriod) error
	FindPeriodByID(ctx context.Context, periodID string) (*domain.FinancialPeriod, error)
	ListPeriodsByOrganization(ctx context.Context, organizationID string) ([]domain.FinancialPeriod, error)
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string) error
}
