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

type PgxCompanyRepository struct {
	pool *pgxpool.Pool
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{pool: pool}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompanyRow(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.CompanyID,
		&c.Name,
		&c.Status,
		&c.DeletedAt,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCompany persists a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, name, status, deleted_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		string(company.Status),
		company.DeletedAt,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: company with ID %s already exists", apperrors.ErrDuplicate, company.CompanyID)
			}
		}
		return fmt.Errorf("failed to save company %s: %w", company.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by ID, including soft-deleted ones so
// callers can reactivate or report a meaningful state.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, status, deleted_at, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE company_id = $1;
	`
	c, err := scanCompanyRow(r.pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}
	return c, nil
}

// ListCompanies retrieves companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Company, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT company_id, name, status, deleted_at, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE ($3 OR deleted_at IS NULL)
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompanyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}

// UpdateCompany updates the company name.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $1, last_updated_at = $2, last_updated_by = $3
		WHERE company_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query,
		company.Name,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
		company.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", company.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteCompany marks a company deleted and inactive. Idempotent: a
// second delete affects no rows and is not an error as long as the company
// exists.
func (r *PgxCompanyRepository) SoftDeleteCompany(ctx context.Context, companyID, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE companies
		SET deleted_at = $1, status = $2, last_updated_at = $1, last_updated_by = $3
		WHERE company_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, deletedAt, string(domain.StatusInactive), deletedBy, companyID)
	if err != nil {
		return fmt.Errorf("failed to soft delete company %s: %w", companyID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM companies WHERE company_id = $1);`
		if err := r.pool.QueryRow(ctx, checkQuery, companyID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check company %s: %w", companyID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

// ReactivateCompany clears the deletion marker and reactivates the company.
func (r *PgxCompanyRepository) ReactivateCompany(ctx context.Context, companyID, updatedBy string) error {
	query := `
		UPDATE companies
		SET deleted_at = NULL, status = $1, last_updated_at = now(), last_updated_by = $2
		WHERE company_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, string(domain.StatusActive), updatedBy, companyID)
	if err != nil {
		return fmt.Errorf("failed to reactivate company %s: %w", companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
