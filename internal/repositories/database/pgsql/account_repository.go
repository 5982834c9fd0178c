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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const selectAccountColumns = `
	SELECT account_id, company_id, category_id, name, account_type, status,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM accounts
`

func scanAccountRow(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.CategoryID,
		&m.Name,
		&m.AccountType,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new account. Account names are unique per company;
// a collision surfaces as apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, company_id, category_id, name, account_type, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.CategoryID,
		m.Name,
		m.AccountType,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account named %q already exists in company", apperrors.ErrDuplicate, m.Name)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by ID within a company.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := selectAccountColumns + `
	WHERE account_id = $1 AND company_id = $2;
	`
	m, err := scanAccountRow(r.pool.QueryRow(ctx, query, accountID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	d := mapping.ToDomainAccount(*m)
	return &d, nil
}

// FindAccountsByIDs retrieves multiple accounts of a company keyed by ID.
// Missing IDs are simply absent from the result map; callers decide whether
// that is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := selectAccountColumns + `
	WHERE company_id = $1 AND account_id = ANY($2);
	`
	rows, err := r.pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return result, nil
}

// ListAccountsByCompany retrieves accounts for a company ordered by name,
// narrowed by the filter.
func (r *PgxAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string, filter portsrepo.AccountFilter, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 100
	}
	query := selectAccountColumns + `
	WHERE company_id = $1
		AND ($2 = '' OR account_type = $2)
		AND ($3 = '' OR status = $3)
		AND ($4 = '' OR category_id = $4)
	ORDER BY name
	LIMIT $5 OFFSET $6;
	`
	rows, err := r.pool.Query(ctx, query, companyID,
		filter.Type, filter.Status, filter.CategoryID,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccount updates name and category of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, category_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $5 AND company_id = $6;
	`
	tag, err := r.pool.Exec(ctx, query,
		account.Name,
		account.CategoryID,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.AccountID,
		account.CompanyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: account named %q already exists in company", apperrors.ErrDuplicate, account.Name)
			}
		}
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetAccountStatus activates or deactivates an account. Accounts are never
// hard deleted while journal lines reference them.
func (r *PgxAccountRepository) SetAccountStatus(ctx context.Context, companyID, accountID string, status domain.CommonStatus, updatedBy string) error {
	query := `
		UPDATE accounts
		SET status = $1, last_updated_at = now(), last_updated_by = $2
		WHERE account_id = $3 AND company_id = $4;
	`
	tag, err := r.pool.Exec(ctx, query, string(status), updatedBy, accountID, companyID)
	if err != nil {
		return fmt.Errorf("failed to set status of account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
