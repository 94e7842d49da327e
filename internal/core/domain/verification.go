package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationStatus indicates the state of a verification.
type VerificationStatus string

const (
	VerificationPosted   VerificationStatus = "POSTED"
	VerificationReversed VerificationStatus = "REVERSED"
)

// Verification is a single bookkeeping event (verifikation): a dated, numbered
// set of rows that must net to zero. Verifications are append-only; corrections
// are made by posting a reversing verification, never by editing.
type Verification struct {
	VerificationID string             `json:"verificationID"` // Primary Key (UUID)
	OrganizationID string             `json:"organizationID"` // FK -> organizations
	SeriesNumber   int64              `json:"seriesNumber"`   // Sequential number within the organization
	Date           time.Time          `json:"date"`           // Date the event occurred
	Description    string             `json:"description"`
	Status         VerificationStatus `json:"status"`
	// Reversal linkage: set when this verification corrects, or is corrected by, another.
	OriginalVerificationID  *string `json:"originalVerificationID,omitempty"`
	ReversingVerificationID *string `json:"reversingVerificationID,omitempty"`
	AuditFields
}

// VerificationRow is one debit/credit line of a verification against a BAS account.
// Typically exactly one of Debit/Credit is non-zero, but consumers must tolerate
// both being set; the effective amount is always Debit - Credit.
type VerificationRow struct {
	RowID          string          `json:"rowID"`          // Primary Key (UUID)
	VerificationID string          `json:"verificationID"` // FK -> verifications
	Account        string          `json:"account"`        // 4-digit BAS account code, e.g. "3010"
	Debit          decimal.Decimal `json:"debit"`          // Non-negative
	Credit         decimal.Decimal `json:"credit"`         // Non-negative
	Date           time.Time       `json:"date"`           // Mirrors the verification date
	Description    string          `json:"description"`
}

// Net returns the signed amount of the row (debit minus credit).
func (r VerificationRow) Net() decimal.Decimal {
	return r.Debit.Sub(r.Credit)
}
