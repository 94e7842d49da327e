package models

// Organization is the storage representation of a tenant.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	OrgNumber      string `json:"orgNumber"`
	FiscalYearEnd  string `json:"fiscalYearEnd"`
	AuditFields
}

// UserOrganization links a user to an organization with a role.
type UserOrganization struct {
	UserID         string `json:"userID"`
	OrganizationID string `json:"organizationID"`
	Role           string `json:"role"`
	AuditFields
}
