package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{pool: pool}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// Record persists one audit event. Details is stored as JSONB.
func (r *PgxAuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	query := `
		INSERT INTO audit_logs (event_id, company_id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::jsonb, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		event.EventID,
		event.CompanyID,
		event.UserID,
		string(event.Action),
		event.EntityType,
		event.EntityID,
		event.Details,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record audit event %s: %w", event.EventID, err)
	}
	return nil
}

// ListEvents retrieves audit events of a company, newest first, narrowed by
// the filter.
func (r *PgxAuditRepository) ListEvents(ctx context.Context, companyID string, filter portsrepo.AuditFilter, limit, offset int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT event_id, company_id, user_id, action, entity_type, entity_id, COALESCE(details::text, ''), created_at
		FROM audit_logs
		WHERE company_id = $1
			AND ($2 = '' OR entity_type = $2)
			AND ($3 = '' OR entity_id = $3)
			AND ($4 = '' OR action = $4)
			AND ($5 = '' OR user_id = $5)
			AND ($6::timestamptz IS NULL OR created_at >= $6)
			AND ($7::timestamptz IS NULL OR created_at <= $7)
		ORDER BY created_at DESC
		LIMIT $8 OFFSET $9;
	`
	rows, err := r.pool.Query(ctx, query, companyID,
		filter.EntityType, filter.EntityID, filter.Action, filter.UserID,
		filter.FromDate, filter.ToDate,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events for company %s: %w", companyID, err)
	}
	defer rows.Close()

	events := []domain.AuditEvent{}
	for rows.Next() {
		var e domain.AuditEvent
		var action string
		if err := rows.Scan(
			&e.EventID,
			&e.CompanyID,
			&e.UserID,
			&action,
			&e.EntityType,
			&e.EntityID,
			&e.Details,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit event row: %w", err)
		}
		e.Action = domain.AuditAction(action)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit event rows: %w", err)
	}
	return events, nil
}
