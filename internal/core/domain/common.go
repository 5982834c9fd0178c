package domain

import "time"

// CommonStatus is the shared lifecycle status for companies and accounts.
type CommonStatus string

const (
	StatusActive   CommonStatus = "ACTIVE"
	StatusInactive CommonStatus = "INACTIVE"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}
