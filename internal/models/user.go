package models

// User is the storage representation of an account holder.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuthProvider string `json:"authProvider"`
	ProviderID   string `json:"-"`
	AuditFields
}
