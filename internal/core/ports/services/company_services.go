package services

import (
	"context"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// CompanySvcFacade defines operations for managing companies. Create, delete
// and reactivate are restricted to elevated roles.
type CompanySvcFacade interface {
	// CreateCompany creates a new company.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, actor domain.Actor) (*domain.Company, error)

	// GetCompanyByID retrieves a company by ID.
	GetCompanyByID(ctx context.Context, companyID string, actor domain.Actor) (*domain.Company, error)

	// ListCompanies retrieves companies visible to the actor.
	ListCompanies(ctx context.Context, actor domain.Actor, params dto.ListCompaniesParams) ([]domain.Company, error)

	// UpdateCompany updates the company name.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, actor domain.Actor) (*domain.Company, error)

	// DeleteCompany soft-deletes a company. Idempotent.
	DeleteCompany(ctx context.Context, companyID string, actor domain.Actor) error

	// ReactivateCompany restores a soft-deleted company.
	ReactivateCompany(ctx context.Context, companyID string, actor domain.Actor) (*domain.Company, error)
}
