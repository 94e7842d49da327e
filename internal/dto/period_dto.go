package dto

import (
	"time"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// CreatePeriodRequest defines the payload for creating a financial period.
type CreatePeriodRequest struct {
	Label      string     `json:"label" binding:"required,max=50"`
	StartDate  time.Time  `json:"startDate" binding:"required"`
	EndDate    time.Time  `json:"endDate" binding:"required"`
	VatDueDate *time.Time `json:"vatDueDate"`
}

// PeriodResponse defines the structure for period data in API responses.
type PeriodResponse struct {
	PeriodID   string     `json:"periodId"`
	Label      string     `json:"label"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	VatDueDate *time.Time `json:"vatDueDate,omitempty"`
	Status     string     `json:"status"`
}

// ToPeriodResponse converts a domain.FinancialPeriod to a PeriodResponse DTO.
func ToPeriodResponse(p *domain.FinancialPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:   p.PeriodID,
		Label:      p.Label,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		VatDueDate: p.VatDueDate,
		Status:     string(p.Status),
	}
}
