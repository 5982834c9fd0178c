package repositories

import (
	"context"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// AccountFilter narrows an account listing. Zero-valued fields are ignored.
type AccountFilter struct {
	Type       string
	Status     string
	CategoryID string
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account by ID within a company.
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts of a company keyed by ID.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccountsByCompany retrieves accounts for a company ordered by name,
	// narrowed by the filter.
	ListAccountsByCompany(ctx context.Context, companyID string, filter AccountFilter, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name and category of an account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetAccountStatus activates or deactivates an account.
	SetAccountStatus(ctx context.Context, companyID string, accountID string, status domain.CommonStatus, updatedBy string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// CategoryRepositoryFacade defines operations for account category data
type CategoryRepositoryFacade interface {
	// FindCategoryByID retrieves a category by ID within a company.
	FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.AccountCategory, error)

	// ListCategoriesByCompany retrieves all categories of a company ordered by name.
	ListCategoriesByCompany(ctx context.Context, companyID string) ([]domain.AccountCategory, error)

	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.AccountCategory) error

	// UpdateCategory updates name and description of a category.
	UpdateCategory(ctx context.Context, category domain.AccountCategory) error

	// DeleteCategory removes a category and detaches its accounts in the same
	// transaction.
	DeleteCategory(ctx context.Context, companyID string, categoryID string, updatedBy string) error

	// MoveAccounts reassigns every account of one category to another in a
	// single statement. A nil category means "uncategorized" on either side.
	// Returns the number of accounts moved.
	MoveAccounts(ctx context.Context, companyID string, fromCategoryID *string, toCategoryID *string, updatedBy string) (int64, error)
}
