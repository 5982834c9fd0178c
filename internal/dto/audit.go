package dto

import (
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// ListAuditEventsParams defines query parameters for reading the audit log.
type ListAuditEventsParams struct {
	EntityType string `form:"entityType"`
	EntityID   string `form:"entityID"`
	Action     string `form:"action"`
	UserID     string `form:"userID"`
	FromDate   string `form:"fromDate" binding:"omitempty,dateonly"`
	ToDate     string `form:"toDate" binding:"omitempty,dateonly"`
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset,default=0"`
}

// AuditEventResponse defines the data returned for a recorded audit event.
type AuditEventResponse struct {
	EventID    string    `json:"eventID"`
	CompanyID  string    `json:"companyID"`
	UserID     string    `json:"userID"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListAuditEventsResponse wraps a page of audit events.
type ListAuditEventsResponse struct {
	Events []AuditEventResponse `json:"events"`
}

// ToAuditEventResponse converts a domain.AuditEvent to AuditEventResponse DTO.
func ToAuditEventResponse(e *domain.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		EventID:    e.EventID,
		CompanyID:  e.CompanyID,
		UserID:     e.UserID,
		Action:     string(e.Action),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
	}
}

// ToListAuditEventsResponse converts a slice of domain.AuditEvent to the list DTO.
func ToListAuditEventsResponse(events []domain.AuditEvent) ListAuditEventsResponse {
	responses := make([]AuditEventResponse, len(events))
	for i, e := range events {
		responses[i] = ToAuditEventResponse(&e)
	}
	return ListAuditEventsResponse{Events: responses}
}
