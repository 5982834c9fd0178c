package services

import (
	"context"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// auditService exposes the recorded audit trail for reading.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditReader
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditReader) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// ListEvents retrieves audit events of a company, newest first.
func (s *auditService) ListEvents(ctx context.Context, companyID string, actor domain.Actor, params dto.ListAuditEventsParams) ([]domain.AuditEvent, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	from, to, err := parseDateWindow(params.FromDate, params.ToDate)
	if err != nil {
		return nil, err
	}
	filter := portsrepo.AuditFilter{
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		Action:     params.Action,
		UserID:     params.UserID,
		FromDate:   from,
		ToDate:     to,
	}
	return s.auditRepo.ListEvents(ctx, companyID, filter, params.Limit, params.Offset)
}
