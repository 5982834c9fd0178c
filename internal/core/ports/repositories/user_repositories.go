package repositories

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID. Soft-deleted users are not returned.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email for authentication.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByCompany retrieves users belonging to a company.
	ListUsersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates mutable user fields (name, role).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces a user's password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error

	// SoftDeleteUser marks a user deleted and inactive.
	SoftDeleteUser(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
