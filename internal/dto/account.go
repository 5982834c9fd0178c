package dto

import (
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// CreateAccountRequest defines data needed to create an account.
type CreateAccountRequest struct {
	Name        string  `json:"name" binding:"required"`
	AccountType string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	CategoryID  *string `json:"categoryID"`
}

// UpdateAccountRequest defines data allowed for updating an account.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateAccountRequest struct {
	Name       *string `json:"name"`
	CategoryID *string `json:"categoryID"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Type       string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	CategoryID string `form:"categoryID"`
	Limit      int    `form:"limit,default=100"`
	Offset     int    `form:"offset,default=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string    `json:"accountID"`
	CompanyID   string    `json:"companyID"`
	CategoryID  *string   `json:"categoryID"`
	Name        string    `json:"name"`
	AccountType string    `json:"accountType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		CategoryID:  a.CategoryID,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToAccountResponse(&a)
	}
	return ListAccountsResponse{Accounts: responses}
}
