package mapping

import (
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/models"
)

// ToModelVerification converts a domain Verification to a model Verification.
func ToModelVerification(d domain.Verification) models.Verification {
	return models.Verification{
		VerificationID:          d.VerificationID,
		OrganizationID:          d.OrganizationID,
		SeriesNumber:            d.SeriesNumber,
		Date:                    d.Date,
		Description:             d.Description,
		Status:                  models.VerificationStatus(d.Status),
		OriginalVerificationID:  d.OriginalVerificationID,
		ReversingVerificationID: d.ReversingVerificationID,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVerification converts a model Verification to a domain Verification.
func ToDomainVerification(m models.Verification) domain.Verification {
	return domain.Verification{
		VerificationID:          m.VerificationID,
		OrganizationID:          m.OrganizationID,
		SeriesNumber:            m.SeriesNumber,
		Date:                    m.Date,
		Description:             m.Description,
		Status:                  domain.VerificationStatus(m.Status),
		OriginalVerificationID:  m.OriginalVerificationID,
		ReversingVerificationID: m.ReversingVerificationID,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVerificationRow converts a domain VerificationRow to its model form.
func ToModelVerificationRow(d domain.VerificationRow) models.VerificationRow {
	return models.VerificationRow{
		RowID:          d.RowID,
		VerificationID: d.VerificationID,
		Account:        d.Account,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Date:           d.Date,
		Description:    d.Description,
	}
}

// ToDomainVerificationRow converts a model VerificationRow to its domain form.
func ToDomainVerificationRow(m models.VerificationRow) domain.VerificationRow {
	return domain.VerificationRow{
		RowID:          m.RowID,
		VerificationID: m.VerificationID,
		Account:        m.Account,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Date:           m.Date,
		Description:    m.Description,
	}
}

// ToDomainVerificationRows converts a slice of model rows to domain rows.
func ToDomainVerificationRows(ms []models.VerificationRow) []domain.VerificationRow {
	rows := make([]domain.VerificationRow, len(ms))
	for i, m := range ms {
		rows[i] = ToDomainVerificationRow(m)
	}
	return rows
}
