package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/klarbok/klarbok_backend/internal/core/domain"
)

// CreateVerificationRowRequest is one ledger row of a new verification.
type CreateVerificationRowRequest struct {
	Account     string          `json:"account" binding:"required,len=4,numeric"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description" binding:"max=255"`
}

// CreateVerificationRequest defines the payload for posting a verification.
type CreateVerificationRequest struct {
	Date        time.Time                      `json:"date" binding:"required" time_format:"2006-01-02"`
	Description string                         `json:"description" binding:"required,max=255"`
	Rows        []CreateVerificationRowRequest `json:"rows" binding:"required,min=2,dive"`
}

// VerificationRowResponse defines one row in API responses.
type VerificationRowResponse struct {
	RowID       string          `json:"rowId"`
	Account     string          `json:"account"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// VerificationResponse defines the structure for verification data in API responses.
type VerificationResponse struct {
	VerificationID          string                    `json:"verificationId"`
	OrganizationID          string                    `json:"organizationId"`
	SeriesNumber            int64                     `json:"seriesNumber"`
	Date                    time.Time                 `json:"date"`
	Description             string                    `json:"description"`
	Status                  string                    `json:"status"`
	OriginalVerificationID  *string                   `json:"originalVerificationId,omitempty"`
	ReversingVerificationID *string                   `json:"reversingVerificationId,omitempty"`
	Rows                    []VerificationRowResponse `json:"rows,omitempty"`
	CreatedAt               time.Time                 `json:"createdAt"`
}

// ListVerificationsResponse is a single page of verifications.
type ListVerificationsResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToVerificationResponse converts a domain.Verification to a VerificationResponse DTO.
func ToVerificationResponse(v *domain.Verification, rows []domain.VerificationRow) VerificationResponse {
	resp := VerificationResponse{
		VerificationID:          v.VerificationID,
		OrganizationID:          v.OrganizationID,
		SeriesNumber:            v.SeriesNumber,
		Date:                    v.Date,
		Description:             v.Description,
		Status:                  string(v.Status),
		OriginalVerificationID:  v.OriginalVerificationID,
		ReversingVerificationID: v.ReversingVerificationID,
		CreatedAt:               v.CreatedAt,
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, VerificationRowResponse{
			RowID:       r.RowID,
			Account:     r.Account,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Description: r.Description,
		})
	}
	return resp
}

// ToListVerificationsResponse converts a page of verifications to its response DTO.
func ToListVerificationsResponse(verifications []domain.Verification, nextToken *string) ListVerificationsResponse {
	resp := ListVerificationsResponse{
		Verifications: make([]VerificationResponse, 0, len(verifications)),
		NextToken:     nextToken,
	}
	for i := range verifications {
		resp.Verifications = append(resp.Verifications, ToVerificationResponse(&verifications[i], nil))
	}
	return resp
}
