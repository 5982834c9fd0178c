package dto

import (
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// CreateCategoryRequest defines data needed to create an account category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest defines data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// MoveAccountsRequest defines a bulk move of accounts between categories.
// A nil category means "uncategorized" on either side.
type MoveAccountsRequest struct {
	FromCategoryID *string `json:"fromCategoryID"`
	ToCategoryID   *string `json:"toCategoryID"`
}

// MoveAccountsResponse reports how many accounts the move touched.
type MoveAccountsResponse struct {
	Moved int64 `json:"moved"`
}

// CategoryResponse defines the data returned for an account category.
type CategoryResponse struct {
	CategoryID  string    `json:"categoryID"`
	CompanyID   string    `json:"companyID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.AccountCategory to CategoryResponse DTO.
func ToCategoryResponse(c *domain.AccountCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.AccountCategory to the list DTO.
func ToListCategoriesResponse(categories []domain.AccountCategory) ListCategoriesResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: responses}
}
