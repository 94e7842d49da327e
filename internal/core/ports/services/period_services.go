package services

import (
	"context"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/dto"
)

// PeriodSvcFacade defines the financial period operations.
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, organizationID string, req dto.CreatePeriodRequest, requestingUserID string) (*domain.FinancialPeriod, error)
	GetPeriodByID(ctx context.Context, organizationID, periodID, requestingUserID string) (*domain.FinancialPeriod, error)
	ListPeriods(ctx context.Context, organizationID, requestingUserID string) ([]domain.FinancialPeriod, error)
	ClosePeriod(ctx context.Context, organizationID, periodID, requestingUserID string) (*domain.FinancialPeriod, error)
}
