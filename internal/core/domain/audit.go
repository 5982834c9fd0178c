package domain

import "time"

// AuditAction names the mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditEvent describes one committed mutation. Events are recorded after a
// successful commit, best-effort: a failure to record never rolls back or
// fails the triggering mutation.
type AuditEvent struct {
	EventID    string      `json:"eventID"`
	CompanyID  string      `json:"companyID"`
	UserID     string      `json:"userID"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   string      `json:"entityID"`
	Details    string      `json:"details,omitempty"` // free-form JSON payload
	CreatedAt  time.Time   `json:"createdAt"`
}
