package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/platform/config"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// userService provides authentication and company-scoped user management.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config, auditSink portsrepo.AuditSink) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{AuditSink: auditSink},
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Login verifies credentials and returns a signed access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrForbidden, ErrInvalidCredentials)
		}
		return nil, err
	}
	if user.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrForbidden, ErrInvalidCredentials)
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	token, err := utils.GenerateJWT(user.UserID, companyID, string(user.UserRole), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(500, "failed to generate access token", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// canManageUsers reports whether the actor may manage users of the company.
func canManageUsers(actor domain.Actor, companyID string) bool {
	if actor.Role.Elevated() {
		return true
	}
	return actor.Role == domain.RoleCompanyAdmin && actor.CompanyID == companyID
}

// CreateUser creates a new user within a company. Company admins can only
// grant company-scoped roles; elevated roles are reserved for elevated actors.
func (s *userService) CreateUser(ctx context.Context, companyID string, req dto.CreateUserRequest, actor domain.Actor) (*domain.User, error) {
	if !canManageUsers(actor, companyID) {
		return nil, apperrors.ErrForbidden
	}

	role := domain.UserRole(req.Role)
	if role.Elevated() && !actor.Role.Elevated() {
		return nil, fmt.Errorf("%w: cannot grant role %s", apperrors.ErrForbidden, role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		UserRole:     role,
		Status:       domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	// Elevated roles are not bound to a company.
	if !role.Elevated() {
		user.CompanyID = &companyID
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditCreate, "user", user.UserID, map[string]any{
		"role": string(role),
	})
	return &user, nil
}

// GetUserByID retrieves a user by ID. Company-scoped actors can only see
// users of their own company.
func (s *userService) GetUserByID(ctx context.Context, userID string, actor domain.Actor) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.Elevated() {
		if user.CompanyID == nil || *user.CompanyID != actor.CompanyID {
			return nil, apperrors.ErrNotFound
		}
	}
	return user, nil
}

// GetProfile retrieves the authenticated user's own record.
func (s *userService) GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, actor.UserID)
}

// ChangePassword replaces the authenticated user's password after verifying
// the current one.
func (s *userService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, actor domain.Actor) error {
	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrForbidden)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.NewAppError(500, "failed to hash password", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	s.LogInfo(ctx, "Password changed", slog.String("user_id", user.UserID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "user", user.UserID, map[string]any{
		"field": "password",
	})
	return nil
}

// ListUsers retrieves users of a company.
func (s *userService) ListUsers(ctx context.Context, companyID string, actor domain.Actor, params dto.ListUsersParams) ([]domain.User, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsersByCompany(ctx, companyID, params.Limit, params.Offset)
}

// UpdateUser updates name or role of a user.
func (s *userService) UpdateUser(ctx context.Context, companyID, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error) {
	if !canManageUsers(actor, companyID) {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.GetUserByID(ctx, userID, actor)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if role.Elevated() && !actor.Role.Elevated() {
			return nil, fmt.Errorf("%w: cannot grant role %s", apperrors.ErrForbidden, role)
		}
		user.UserRole = role
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = actor.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "user", userID, nil)
	return user, nil
}

// DeleteUser soft-deletes a user. Self-deletion is rejected.
func (s *userService) DeleteUser(ctx context.Context, companyID, userID string, actor domain.Actor) error {
	if !canManageUsers(actor, companyID) {
		return apperrors.ErrForbidden
	}
	if userID == actor.UserID {
		return fmt.Errorf("%w: cannot delete own user", apperrors.ErrValidation)
	}

	if _, err := s.GetUserByID(ctx, userID, actor); err != nil {
		return err
	}
	if err := s.userRepo.SoftDeleteUser(ctx, userID, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditDelete, "user", userID, nil)
	return nil
}
