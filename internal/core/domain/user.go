package domain

import "time"

// UserRole determines what a user may do and across which companies.
type UserRole string

const (
	RoleSuperAdmin   UserRole = "SUPER_ADMIN"
	RoleModerator    UserRole = "MODERATOR"
	RoleCompanyAdmin UserRole = "COMPANY_ADMIN"
	RoleCompanyUser  UserRole = "COMPANY_USER"
)

// Elevated reports whether the role may act across company boundaries.
func (r UserRole) Elevated() bool {
	return r == RoleSuperAdmin || r == RoleModerator
}

// User is an authenticated principal. Company-scoped roles carry a CompanyID;
// elevated roles (SUPER_ADMIN, MODERATOR) have none.
type User struct {
	UserID       string       `json:"userID"`
	CompanyID    *string      `json:"companyID,omitempty"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	UserRole     UserRole     `json:"userRole"`
	Status       CommonStatus `json:"status"`
	DeletedAt    *time.Time   `json:"deletedAt,omitempty"`
	AuditFields
}

// Actor is the explicit request-scoped identity passed to every core call.
// It replaces any ambient per-request state: services never read the acting
// user from context values.
type Actor struct {
	UserID    string
	CompanyID string // empty for elevated roles
	Role      UserRole
}

// CanAccessCompany reports whether the actor may touch resources of companyID.
func (a Actor) CanAccessCompany(companyID string) bool {
	if a.Role.Elevated() {
		return true
	}
	return a.CompanyID != "" && a.CompanyID == companyID
}
