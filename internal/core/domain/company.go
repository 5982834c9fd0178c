package domain

import "time"

// Company is the tenant boundary. Accounts, users and journal entries all
// hang off a company; no mutation may cross it.
type Company struct {
	CompanyID string       `json:"companyID"`
	Name      string       `json:"name"`
	Status    CommonStatus `json:"status"`
	DeletedAt *time.Time   `json:"deletedAt,omitempty"` // soft-delete tombstone
	AuditFields
}

// IsDeleted reports whether the company carries a soft-delete tombstone.
func (c Company) IsDeleted() bool {
	return c.DeletedAt != nil
}
