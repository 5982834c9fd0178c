package dto

import (
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// CreateCompanyRequest defines data needed to create a company.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCompanyRequest defines data allowed for updating a company.
type UpdateCompanyRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ListCompaniesParams defines query parameters for listing companies.
type ListCompaniesParams struct {
	Limit          int  `form:"limit,default=50"`
	Offset         int  `form:"offset,default=0"`
	IncludeDeleted bool `form:"includeDeleted,default=false"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID string     `json:"companyID"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ListCompaniesResponse wraps the list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Status:    string(c.Status),
		DeletedAt: c.DeletedAt,
		CreatedAt: c.CreatedAt,
	}
}

// ToListCompaniesResponse converts a slice of domain.Company to the list DTO.
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: responses}
}
