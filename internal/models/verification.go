package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationStatus indicates the state of a verification row in storage.
type VerificationStatus string

const (
	VerificationPosted   VerificationStatus = "POSTED"
	VerificationReversed VerificationStatus = "REVERSED"
)

// Verification is the storage representation of a bookkeeping verification.
type Verification struct {
	VerificationID          string             `json:"verificationID"`
	OrganizationID          string             `json:"organizationID"`
	SeriesNumber            int64              `json:"seriesNumber"`
	Date                    time.Time          `json:"date"`
	Description             string             `json:"description"`
	Status                  VerificationStatus `json:"status"`
	OriginalVerificationID  *string            `json:"originalVerificationID,omitempty"`
	ReversingVerificationID *string            `json:"reversingVerificationID,omitempty"`
	AuditFields
}

// VerificationRow is the storage representation of one debit/credit line.
type VerificationRow struct {
	RowID          string          `json:"rowID"`
	VerificationID string          `json:"verificationID"`
	Account        string          `json:"account"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
}
