package models

import (
	"encoding/json"
	"time"
)

// ReportStatus is the stored lifecycle state of a report record.
type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportSubmitted ReportStatus = "submitted"
)

// Report is the storage representation of a persisted report snapshot.
type Report struct {
	ReportID       string          `json:"reportID"`
	OrganizationID string          `json:"organizationID"`
	PeriodID       string          `json:"periodID"`
	ReportType     string          `json:"reportType"`
	Data           json.RawMessage `json:"data"`
	Status         ReportStatus    `json:"status"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	AuditFields
}
