package mapping

import (
	"github.com/klarbok/klarbok_backend/internal/core/domain"
	"github.com/klarbok/klarbok_backend/internal/models"
)

// ToModelReport converts a domain PersistedReport to a model Report.
func ToModelReport(d domain.PersistedReport) models.Report {
	return models.Report{
		ReportID:       d.ReportID,
		OrganizationID: d.OrganizationID,
		PeriodID:       d.PeriodID,
		ReportType:     string(d.ReportType),
		Data:           d.Data,
		Status:         models.ReportStatus(d.Status),
		PeriodStart:    d.PeriodStart,
		PeriodEnd:      d.PeriodEnd,
		GeneratedAt:    d.GeneratedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReport converts a model Report to a domain PersistedReport.
func ToDomainReport(m models.Report) domain.PersistedReport {
	return domain.PersistedReport{
		ReportID:       m.ReportID,
		OrganizationID: m.OrganizationID,
		PeriodID:       m.PeriodID,
		ReportType:     domain.ReportType(m.ReportType),
		Data:           m.Data,
		Status:         domain.ReportStatus(m.Status),
		PeriodStart:    m.PeriodStart,
		PeriodEnd:      m.PeriodEnd,
		GeneratedAt:    m.GeneratedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPeriod converts a domain FinancialPeriod to its model form.
func ToModelPeriod(d domain.FinancialPeriod) models.FinancialPeriod {
	return models.FinancialPeriod{
		PeriodID:       d.PeriodID,
		OrganizationID: d.OrganizationID,
		Label:          d.Label,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		VatDueDate:     d.VatDueDate,
		Status:         models.PeriodStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model FinancialPeriod to its domain form.
func ToDomainPeriod(m models.FinancialPeriod) domain.FinancialPeriod {
	return domain.FinancialPeriod{
		PeriodID:       m.PeriodID,
		OrganizationID: m.OrganizationID,
		Label:          m.Label,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		VatDueDate:     m.VatDueDate,
		Status:         domain.PeriodStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
