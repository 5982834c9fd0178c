package services

import (
	"context"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// AccountSvcFacade defines operations for managing accounts
type AccountSvcFacade interface {
	// CreateAccount creates a new account in the company's chart of accounts.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error)

	// GetAccountByID retrieves an account by ID.
	GetAccountByID(ctx context.Context, companyID string, accountID string, actor domain.Actor) (*domain.Account, error)

	// ListAccounts retrieves the company's accounts.
	ListAccounts(ctx context.Context, companyID string, actor domain.Actor, params dto.ListAccountsParams) ([]domain.Account, error)

	// UpdateAccount updates name or category of an account.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error)

	// DeactivateAccount marks an account inactive. Accounts are never hard
	// deleted; journal lines may still reference them.
	DeactivateAccount(ctx context.Context, companyID string, accountID string, actor domain.Actor) error

	// ReactivateAccount marks an inactive account active again.
	ReactivateAccount(ctx context.Context, companyID string, accountID string, actor domain.Actor) error
}

// CategorySvcFacade defines operations for managing account categories
type CategorySvcFacade interface {
	// CreateCategory creates a new account category.
	CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, actor domain.Actor) (*domain.AccountCategory, error)

	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, companyID string, categoryID string, actor domain.Actor) (*domain.AccountCategory, error)

	// ListCategories retrieves all categories of a company.
	ListCategories(ctx context.Context, companyID string, actor domain.Actor) ([]domain.AccountCategory, error)

	// UpdateCategory updates name or description of a category.
	UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, actor domain.Actor) (*domain.AccountCategory, error)

	// DeleteCategory removes a category, detaching its accounts.
	DeleteCategory(ctx context.Context, companyID string, categoryID string, actor domain.Actor) error

	// MoveAccounts moves every account of one category to another and
	// returns the number of accounts moved.
	MoveAccounts(ctx context.Context, companyID string, req dto.MoveAccountsRequest, actor domain.Actor) (int64, error)
}
