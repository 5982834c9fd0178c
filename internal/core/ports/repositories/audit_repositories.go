package repositories

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// AuditSink records audit events after successful mutations. Implementations
// must not fail the originating operation; callers log and continue on error.
type AuditSink interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditFilter narrows an audit trail query. Zero-valued fields are ignored.
type AuditFilter struct {
	EntityType string
	EntityID   string
	Action     string
	UserID     string
	FromDate   *time.Time
	ToDate     *time.Time
}

// AuditReader defines read access to the recorded audit trail.
type AuditReader interface {
	// ListEvents retrieves audit events of a company, newest first, narrowed
	// by the filter.
	ListEvents(ctx context.Context, companyID string, filter AuditFilter, limit int, offset int) ([]domain.AuditEvent, error)
}

// AuditRepositoryFacade combines audit write and read access
type AuditRepositoryFacade interface {
	AuditSink
	AuditReader
}
