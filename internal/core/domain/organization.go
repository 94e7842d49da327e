package domain

// OrganizationRole defines what a member may do within an organization.
type OrganizationRole string

const (
	RoleAdmin    OrganizationRole = "ADMIN"
	RoleMember   OrganizationRole = "MEMBER"
	RoleReadOnly OrganizationRole = "READONLY"
)

// Organization is a tenant: one bookkeeping entity (företag/förening) with its
// own verification series, periods, reports and meetings.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (UUID)
	Name           string `json:"name"`
	OrgNumber      string `json:"orgNumber"` // Swedish organisationsnummer, e.g. "556677-8899"
	FiscalYearEnd  string `json:"fiscalYearEnd"` // "MM-DD", normally "12-31"
	AuditFields
}

// UserOrganization links a user to an organization with a role.
type UserOrganization struct {
	UserID         string           `json:"userID"`
	OrganizationID string           `json:"organizationID"`
	Role           OrganizationRole `json:"role"`
	AuditFields
}
