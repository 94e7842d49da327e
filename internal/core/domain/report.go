package domain

import (
	"encoding/json"
	"time"
)

// ReportType identifies what kind of statutory report a persisted record holds.
type ReportType string

const (
	ReportTypeVat             ReportType = "vat"
	ReportTypeIncomeStatement ReportType = "income_statement"
	ReportTypeBalanceSheet    ReportType = "balance_sheet"
	ReportTypeAnnualReport    ReportType = "annual_report"
)

// ReportStatus is the lifecycle state of a persisted report record.
type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportSubmitted ReportStatus = "submitted"
)

// PersistedReport is a stored snapshot of a computed report, including any
// manual box edits the user made before saving. Once Status is submitted the
// record is immutable; a superseding draft must get a new identity.
type PersistedReport struct {
	ReportID       string          `json:"reportID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	PeriodID       string          `json:"periodID"`
	ReportType     ReportType      `json:"reportType"`
	Data           json.RawMessage `json:"data"` // Serialized VatReport / AnnualReport etc.
	Status         ReportStatus    `json:"status"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	AuditFields
}
