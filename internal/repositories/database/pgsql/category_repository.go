package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/openbooks-dev/bookkeeping_backend/internal/models"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for account category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory persists a new category. Category names are unique per company.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.AccountCategory) error {
	m := mapping.ToModelAccountCategory(category)

	query := `
		INSERT INTO account_categories (category_id, company_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.CompanyID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: category named %q already exists in company", apperrors.ErrDuplicate, m.Name)
			}
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by ID within a company.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.AccountCategory, error) {
	query := `
		SELECT category_id, company_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM account_categories
		WHERE category_id = $1 AND company_id = $2;
	`
	var m models.AccountCategory
	err := r.Pool.QueryRow(ctx, query, categoryID, companyID).Scan(
		&m.CategoryID,
		&m.CompanyID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	d := mapping.ToDomainAccountCategory(m)
	return &d, nil
}

// ListCategoriesByCompany retrieves all categories of a company ordered by name.
func (r *PgxCategoryRepository) ListCategoriesByCompany(ctx context.Context, companyID string) ([]domain.AccountCategory, error) {
	query := `
		SELECT category_id, company_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM account_categories
		WHERE company_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for company %s: %w", companyID, err)
	}
	defer rows.Close()

	categories := []domain.AccountCategory{}
	for rows.Next() {
		var m models.AccountCategory
		err := rows.Scan(
			&m.CategoryID,
			&m.CompanyID,
			&m.Name,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainAccountCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// UpdateCategory updates name and description of a category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.AccountCategory) error {
	query := `
		UPDATE account_categories
		SET name = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE category_id = $5 AND company_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		category.Name,
		category.Description,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
		category.CategoryID,
		category.CompanyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: category named %q already exists in company", apperrors.ErrDuplicate, category.Name)
			}
		}
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category and detaches its accounts in the same
// transaction, so accounts are never left pointing at a missing category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, companyID, categoryID, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	detachQuery := `
		UPDATE accounts
		SET category_id = NULL, last_updated_at = now(), last_updated_by = $1
		WHERE category_id = $2 AND company_id = $3;
	`
	if _, err := tx.Exec(ctx, detachQuery, updatedBy, categoryID, companyID); err != nil {
		return fmt.Errorf("failed to detach accounts from category %s: %w", categoryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM account_categories WHERE category_id = $1 AND company_id = $2;`, categoryID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// MoveAccounts reassigns every account of one category to another in a single
// statement. IS NOT DISTINCT FROM matches the NULL "uncategorized" bucket too.
func (r *PgxCategoryRepository) MoveAccounts(ctx context.Context, companyID string, fromCategoryID, toCategoryID *string, updatedBy string) (int64, error) {
	query := `
		UPDATE accounts
		SET category_id = $1, last_updated_at = now(), last_updated_by = $2
		WHERE company_id = $3 AND category_id IS NOT DISTINCT FROM $4;
	`
	tag, err := r.Pool.Exec(ctx, query, toCategoryID, updatedBy, companyID, fromCategoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to move accounts between categories: %w", err)
	}
	return tag.RowsAffected(), nil
}
