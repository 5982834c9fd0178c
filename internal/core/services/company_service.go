package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// companyService provides company management operations.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, auditSink portsrepo.AuditSink) portssvc.CompanySvcFacade {
	return &companyService{
		BaseService: BaseService{AuditSink: auditSink},
		companyRepo: companyRepo,
	}
}

// Ensure companyService implements the portssvc.CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany creates a new company. Elevated roles only.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, actor domain.Actor) (*domain.Company, error) {
	if !actor.Role.Elevated() {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.Name,
		Status:    domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	s.RecordAudit(ctx, actor, company.CompanyID, domain.AuditCreate, "company", company.CompanyID, nil)
	return &company, nil
}

// GetCompanyByID retrieves a company by ID.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string, actor domain.Actor) (*domain.Company, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// ListCompanies retrieves companies visible to the actor. Company-scoped
// users only see their own company.
func (s *companyService) ListCompanies(ctx context.Context, actor domain.Actor, params dto.ListCompaniesParams) ([]domain.Company, error) {
	if !actor.Role.Elevated() {
		company, err := s.companyRepo.FindCompanyByID(ctx, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		return []domain.Company{*company}, nil
	}
	return s.companyRepo.ListCompanies(ctx, params.Limit, params.Offset, params.IncludeDeleted)
}

// UpdateCompany applies name and status changes to a company.
func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, actor domain.Actor) (*domain.Company, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCompanyUser {
		return nil, apperrors.ErrForbidden
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.IsDeleted() {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Status != nil {
		company.Status = domain.CommonStatus(*req.Status)
	}
	company.LastUpdatedAt = time.Now().UTC()
	company.LastUpdatedBy = actor.UserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "company", companyID, nil)
	return company, nil
}

// DeleteCompany soft-deletes a company. Elevated roles only; idempotent.
func (s *companyService) DeleteCompany(ctx context.Context, companyID string, actor domain.Actor) error {
	if !actor.Role.Elevated() {
		return apperrors.ErrForbidden
	}

	if err := s.companyRepo.SoftDeleteCompany(ctx, companyID, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	s.LogInfo(ctx, "Company deleted", slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditDelete, "company", companyID, nil)
	return nil
}

// ReactivateCompany restores a soft-deleted company. Elevated roles only.
func (s *companyService) ReactivateCompany(ctx context.Context, companyID string, actor domain.Actor) (*domain.Company, error) {
	if !actor.Role.Elevated() {
		return nil, apperrors.ErrForbidden
	}

	if err := s.companyRepo.ReactivateCompany(ctx, companyID, actor.UserID); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "company", companyID, map[string]any{
		"reactivated": true,
	})
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}
