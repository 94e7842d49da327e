package dto

import (
	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// CreateOrganizationRequest defines the payload for creating an organization.
type CreateOrganizationRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	OrgNumber     string `json:"orgNumber" binding:"max=20"`
	FiscalYearEnd string `json:"fiscalYearEnd" binding:"omitempty,len=5"`
}

// OrganizationResponse defines organization data in API responses.
type OrganizationResponse struct {
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	OrgNumber      string `json:"orgNumber,omitempty"`
	FiscalYearEnd  string `json:"fiscalYearEnd"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		OrgNumber:      o.OrgNumber,
		FiscalYearEnd:  o.FiscalYearEnd,
	}
}
