package services

import (
	"context"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// AuthSvc defines authentication operations.
type AuthSvc interface {
	// Login verifies credentials and returns a signed access token with the
	// user details.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// UserSvcFacade defines company-scoped user management plus authentication.
type UserSvcFacade interface {
	AuthSvc

	// CreateUser creates a new user within a company.
	CreateUser(ctx context.Context, companyID string, req dto.CreateUserRequest, actor domain.Actor) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string, actor domain.Actor) (*domain.User, error)

	// GetProfile retrieves the authenticated user's own record.
	GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error)

	// ChangePassword replaces the authenticated user's password after
	// verifying the current one.
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, actor domain.Actor) error

	// ListUsers retrieves users of a company.
	ListUsers(ctx context.Context, companyID string, actor domain.Actor, params dto.ListUsersParams) ([]domain.User, error)

	// UpdateUser updates name or role of a user.
	UpdateUser(ctx context.Context, companyID string, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, companyID string, userID string, actor domain.Actor) error
}
