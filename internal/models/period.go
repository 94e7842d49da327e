package models

import "time"

// PeriodStatus is the stored state of a financial period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FinancialPeriod is the storage representation of a reporting period.
type FinancialPeriod struct {
	PeriodID       string       `json:"periodID"`
	OrganizationID string       `json:"organizationID"`
	Label          string       `json:"label"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	VatDueDate     *time.Time   `json:"vatDueDate,omitempty"`
	Status         PeriodStatus `json:"status"`
	AuditFields
}
