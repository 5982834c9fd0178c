package repositories

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by ID, including soft-deleted ones.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves companies ordered by name.
	ListCompanies(ctx context.Context, limit int, offset int, includeDeleted bool) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany updates the company name.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// SoftDeleteCompany marks a company deleted and inactive.
	SoftDeleteCompany(ctx context.Context, companyID string, deletedBy string, deletedAt time.Time) error

	// ReactivateCompany clears the deletion marker and reactivates the company.
	ReactivateCompany(ctx context.Context, companyID string, updatedBy string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
