package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const selectUserColumns = `
	SELECT user_id, company_id, name, email, password_hash, user_role, status, deleted_at,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM users
`

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.CompanyID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.UserRole,
		&u.Status,
		&u.DeletedAt,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUser persists a new user. Emails are globally unique.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, company_id, name, email, password_hash, user_role, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.CompanyID,
		user.Name,
		user.Email,
		user.PasswordHash,
		string(user.UserRole),
		string(user.Status),
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, user.Email)
			}
		}
		return fmt.Errorf("failed to save user %s: %w", user.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by ID. Soft-deleted users are not returned.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := selectUserColumns + `
	WHERE user_id = $1 AND deleted_at IS NULL;
	`
	u, err := scanUserRow(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return u, nil
}

// FindUserByEmail retrieves a user by email for authentication.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := selectUserColumns + `
	WHERE email = $1 AND deleted_at IS NULL;
	`
	u, err := scanUserRow(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

// ListUsersByCompany retrieves users belonging to a company.
func (r *PgxUserRepository) ListUsersByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	query := selectUserColumns + `
	WHERE company_id = $1 AND deleted_at IS NULL
	ORDER BY name
	LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users for company %s: %w", companyID, err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UpdateUser updates mutable user fields (name, role).
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $1, user_role = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query,
		user.Name,
		string(user.UserRole),
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces a user's password hash.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, passwordHash, updatedAt, updatedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteUser marks a user deleted and inactive.
func (r *PgxUserRepository) SoftDeleteUser(ctx context.Context, userID, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE users
		SET deleted_at = $1, status = $2, last_updated_at = $1, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, deletedAt, string(domain.StatusInactive), deletedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
