package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/openbooks-dev/bookkeeping_backend/internal/models"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils/accounting"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils/mapping"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// lockEntry loads the entry row FOR UPDATE, serializing concurrent mutations
// of the same entry for the duration of the transaction. Soft-deleted entries
// are treated as not found.
func (r *PgxJournalRepository) lockEntry(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*models.JournalEntry, error) {
	query := `
		SELECT entry_id, company_id, entry_date, description, deleted_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1 AND company_id = $2 AND deleted_at IS NULL
		FOR UPDATE;
	`
	var m models.JournalEntry
	err := tx.QueryRow(ctx, query, entryID, companyID).Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.EntryDate,
		&m.Description,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock journal entry "+entryID, err)
	}
	return &m, nil
}

// checkEntryBalanced re-verifies the balance invariant over the entry's
// surviving lines inside the given transaction. Called after every line
// mutation and before commit; a violation aborts the transaction.
func (r *PgxJournalRepository) checkEntryBalanced(ctx context.Context, tx pgx.Tx, entryID string) error {
	query := `
		SELECT COALESCE(SUM(debit_amount), 0), COALESCE(SUM(credit_amount), 0)
		FROM journal_lines
		WHERE entry_id = $1;
	`
	var debitTotal, creditTotal int64
	if err := tx.QueryRow(ctx, query, entryID).Scan(&debitTotal, &creditTotal); err != nil {
		return apperrors.NewAppError(500, "failed to sum lines for entry "+entryID, err)
	}
	return accounting.CheckBalanced(debitTotal, creditTotal)
}

const insertLineQuery = `
	INSERT INTO journal_lines (line_id, entry_id, account_id, debit_amount, credit_amount, description, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

// CreateEntry persists a new entry together with its lines in a single
// transaction and verifies the balance invariant before committing.
func (r *PgxJournalRepository) CreateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	modelEntry := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (entry_id, company_id, entry_date, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.CompanyID,
		modelEntry.EntryDate,
		modelEntry.Description,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.DebitAmount,
			m.CreditAmount,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+modelEntry.EntryID, err)
	}

	if err := r.checkEntryBalanced(ctx, tx, modelEntry.EntryID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// AddLine appends a single line to an existing entry.
func (r *PgxJournalRepository) AddLine(ctx context.Context, companyID string, line domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.lockEntry(ctx, tx, companyID, line.EntryID); err != nil {
		return err
	}

	m := mapping.ToModelJournalLine(line)
	_, err = tx.Exec(ctx, insertLineQuery,
		m.LineID,
		m.EntryID,
		m.AccountID,
		m.DebitAmount,
		m.CreditAmount,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert line for entry "+line.EntryID, err)
	}

	if err := r.checkEntryBalanced(ctx, tx, line.EntryID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateLine rewrites the amounts and description of one line.
func (r *PgxJournalRepository) UpdateLine(ctx context.Context, companyID string, line domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.lockEntry(ctx, tx, companyID, line.EntryID); err != nil {
		return err
	}

	query := `
		UPDATE journal_lines
		SET debit_amount = $1, credit_amount = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE line_id = $6 AND entry_id = $7;
	`
	tag, err := tx.Exec(ctx, query,
		line.DebitAmount,
		line.CreditAmount,
		line.Description,
		line.LastUpdatedAt,
		line.LastUpdatedBy,
		line.LineID,
		line.EntryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update line "+line.LineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.checkEntryBalanced(ctx, tx, line.EntryID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteLine removes a single line from an entry. The balance re-check makes
// removing one line of the last balancing pair impossible.
func (r *PgxJournalRepository) DeleteLine(ctx context.Context, companyID, entryID, lineID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.lockEntry(ctx, tx, companyID, entryID); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE line_id = $1 AND entry_id = $2;`, lineID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete line "+lineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.checkEntryBalanced(ctx, tx, entryID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceLines atomically updates the entry header and swaps the full line
// set for the given one.
func (r *PgxJournalRepository) ReplaceLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.lockEntry(ctx, tx, entry.CompanyID, entry.EntryID); err != nil {
		return err
	}

	headerQuery := `
		UPDATE journal_entries
		SET entry_date = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $5 AND company_id = $6 AND deleted_at IS NULL;
	`
	_, err = tx.Exec(ctx, headerQuery,
		entry.EntryDate,
		entry.Description,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.EntryID,
		entry.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update entry "+entry.EntryID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entry.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to clear lines for entry "+entry.EntryID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.DebitAmount,
			m.CreditAmount,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+entry.EntryID, err)
	}

	if err := r.checkEntryBalanced(ctx, tx, entry.EntryID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateEntryHeader updates entry date and description only.
func (r *PgxJournalRepository) UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET entry_date = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $5 AND company_id = $6 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.EntryDate,
		entry.Description,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.EntryID,
		entry.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update entry "+entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteEntry marks an entry deleted. Deleting an already-deleted entry
// is a no-op so the operation stays idempotent.
func (r *PgxJournalRepository) SoftDeleteEntry(ctx context.Context, companyID, entryID, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE entry_id = $3 AND company_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, entryID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to soft delete entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing entry from one already deleted.
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE entry_id = $1 AND company_id = $2);`
		if err := r.Pool.QueryRow(ctx, checkQuery, entryID, companyID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check entry "+entryID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

// FindEntryByID retrieves a journal entry by its ID. Soft-deleted entries are
// not returned.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, company_id, entry_date, description, deleted_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1 AND company_id = $2 AND deleted_at IS NULL;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID, companyID).Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.EntryDate,
		&m.Description,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(m)
	return &domainEntry, nil
}

const selectLinesQuery = `
	SELECT l.line_id, l.entry_id, l.account_id, l.debit_amount, l.credit_amount, l.description,
	       l.created_at, l.created_by, l.last_updated_at, l.last_updated_by,
	       a.name, a.account_type
	FROM journal_lines l
	JOIN accounts a ON l.account_id = a.account_id
`

func scanLineRows(rows pgx.Rows) ([]models.JournalLine, error) {
	lines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.AccountID,
			&l.DebitAmount,
			&l.CreditAmount,
			&l.Description,
			&l.CreatedAt,
			&l.CreatedBy,
			&l.LastUpdatedAt,
			&l.LastUpdatedBy,
			&l.AccountName,
			&l.AccountType,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return lines, nil
}

// FindLinesByEntryID retrieves all lines of an entry in creation order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := selectLinesQuery + `
	WHERE l.entry_id = $1
	ORDER BY l.created_at, l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines, err := scanLineRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := selectLinesQuery + `
	WHERE l.entry_id = ANY($1)
	ORDER BY l.created_at, l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entries", err)
	}
	defer rows.Close()

	lines, err := scanLineRows(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.JournalLine, len(entryIDs))
	for _, l := range lines {
		grouped[l.EntryID] = append(grouped[l.EntryID], mapping.ToDomainJournalLine(l))
	}
	return grouped, nil
}

// ListEntriesByCompany retrieves a paginated list of entries for a company
// using token-based pagination, newest first. It returns the entries, a token
// for the next page, and an error.
func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT entry_id, company_id, entry_date, description, deleted_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE company_id = $1 AND deleted_at IS NULL
	`
	// Ordering must be stable: entry_date DESC with created_at DESC tie-breaker.
	orderByClause := `ORDER BY entry_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{companyID}

	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (entry_date, created_at) < ($2, $3)`
		args = append(args, lastEntryDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for company "+companyID, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.CompanyID,
			&m.EntryDate,
			&m.Description,
			&m.DeletedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row for company "+companyID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows for company "+companyID, err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1] // The actual last item of the current page
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	results := make([]domain.JournalEntry, len(entries))
	for i, m := range entries {
		results[i] = mapping.ToDomainJournalEntry(m)
	}
	return results, nextTokenVal, nil
}
