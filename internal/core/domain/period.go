package domain

import "time"

// PeriodStatus indicates whether a financial period is still accepting bookkeeping.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FinancialPeriod is a reporting period (a VAT quarter/month or a fiscal year).
// Reports reference periods rather than raw date ranges so that a submitted
// report stays tied to the exact interval it was filed for.
type FinancialPeriod struct {
	PeriodID       string       `json:"periodID"`       // Primary Key (UUID)
	OrganizationID string       `json:"organizationID"` // FK -> organizations
	Label          string       `json:"label"`          // Human label, e.g. "Q1 2025"
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	VatDueDate     *time.Time   `json:"vatDueDate,omitempty"` // Skatteverket filing deadline, if applicable
	Status         PeriodStatus `json:"status"`
	AuditFields
}
